package repository

import "realty-agent/domain"

type EstimateRepository interface {
	Save(record domain.EstimateRecord) error
	Recent(limit int) []domain.EstimateRecord
}
