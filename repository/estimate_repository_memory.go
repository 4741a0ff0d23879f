package repository

import (
	"sync"

	"realty-agent/domain"
)

const maxStoredEstimates = 100

// EstimateRepositoryMemory keeps the most recent estimates in memory.
type EstimateRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.EstimateRecord
}

func NewEstimateRepositoryMemory() *EstimateRepositoryMemory {
	return &EstimateRepositoryMemory{
		data: []domain.EstimateRecord{},
	}
}

func (r *EstimateRepositoryMemory) Save(record domain.EstimateRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if len(r.data) > maxStoredEstimates {
		r.data = r.data[len(r.data)-maxStoredEstimates:]
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *EstimateRepositoryMemory) Recent(limit int) []domain.EstimateRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.EstimateRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out
}
