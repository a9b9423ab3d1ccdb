package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-loan-estimator/domain"
)

func TestEstimateRepositoryMemory_RecentIsNewestFirst(t *testing.T) {
	repo := NewEstimateRepositoryMemory()

	for _, balance := range []float64{1000, 2000, 3000} {
		err := repo.Save(
			domain.EstimateInput{LoanBalance: balance, TermYears: 10},
			domain.EstimateResult{},
		)
		require.NoError(t, err)
	}

	recent := repo.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, 3000.0, recent[0].Input.LoanBalance)
	assert.Equal(t, 2000.0, recent[1].Input.LoanBalance)
	assert.NotEmpty(t, recent[0].ID)
	assert.False(t, recent[0].CreatedAt.IsZero())
}

func TestEstimateRepositoryMemory_RecentOversizedLimit(t *testing.T) {
	repo := NewEstimateRepositoryMemory()

	require.NoError(t, repo.Save(domain.EstimateInput{LoanBalance: 1000}, domain.EstimateResult{}))

	assert.Len(t, repo.Recent(50), 1)
	assert.Len(t, repo.Recent(0), 1)
}
