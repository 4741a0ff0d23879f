package repository

import (
	"slices"

	"realty-agent/domain"
)

type PropertyRepository interface {
	All() []domain.Property
	ByID(id int) (domain.Property, bool)
}

// PropertyRepositoryMemory serves the built-in listing dataset.
type PropertyRepositoryMemory struct {
	properties []domain.Property
}

func NewPropertyRepositoryMemory() *PropertyRepositoryMemory {
	return NewPropertyRepositoryFrom(propertyData)
}

func NewPropertyRepositoryFrom(properties []domain.Property) *PropertyRepositoryMemory {
	return &PropertyRepositoryMemory{properties: slices.Clone(properties)}
}

// All returns a copy; callers may reorder it freely.
func (r *PropertyRepositoryMemory) All() []domain.Property {
	return slices.Clone(r.properties)
}

func (r *PropertyRepositoryMemory) ByID(id int) (domain.Property, bool) {
	for _, p := range r.properties {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Property{}, false
}
