package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"student-loan-estimator/domain"
)

type EstimateRecord struct {
	ID        string
	CreatedAt time.Time
	Input     domain.EstimateInput
	Result    domain.EstimateResult
}

// EstimateRepositoryMemory is an in-memory implementation of
// EstimateRepository.
type EstimateRepositoryMemory struct {
	mu      sync.Mutex
	records []EstimateRecord
}

// NewEstimateRepositoryMemory creates a new in-memory estimate repository.
func NewEstimateRepositoryMemory() *EstimateRepositoryMemory {
	return &EstimateRepositoryMemory{
		records: []EstimateRecord{},
	}
}

// Save stores the estimate in memory under a fresh id.
func (r *EstimateRepositoryMemory) Save(
	input domain.EstimateInput,
	result domain.EstimateResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, EstimateRecord{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Input:     input,
		Result:    result,
	})
	return nil
}

// Recent returns up to limit records, newest first.
func (r *EstimateRepositoryMemory) Recent(limit int) []EstimateRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}

	out := make([]EstimateRecord, 0, limit)
	for i := len(r.records) - 1; i >= len(r.records)-limit; i-- {
		out = append(out, r.records[i])
	}
	return out
}
