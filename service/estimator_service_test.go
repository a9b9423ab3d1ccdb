package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-loan-estimator/domain"
	"student-loan-estimator/repository"
)

type MockEstimateRepository struct {
	SaveCalls  int
	ForceError bool
}

func (m *MockEstimateRepository) Save(
	input domain.EstimateInput,
	result domain.EstimateResult,
) error {
	m.SaveCalls++
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func (m *MockEstimateRepository) Recent(limit int) []repository.EstimateRecord {
	return nil
}

func TestCompute_StandardFixture(t *testing.T) {
	result := Compute(domain.EstimateInput{
		LoanBalance:  45000,
		InterestRate: 6.5,
		TermYears:    10,
		IncomeLevel:  domain.IncomeUnder50k,
	})

	assert.Equal(t, 511.0, result.StandardMonthly)
	assert.Equal(t, 61320.0, result.StandardTotal)
}

func TestCompute_ZeroRate(t *testing.T) {
	result := Compute(domain.EstimateInput{
		LoanBalance:  12000,
		InterestRate: 0,
		TermYears:    10,
		IncomeLevel:  domain.IncomeUnder50k,
	})

	assert.Equal(t, 100.0, result.StandardMonthly)
	assert.Equal(t, 12000.0, result.StandardTotal)
}

func TestCompute_ForgivenessOff(t *testing.T) {
	for _, balance := range []float64{1000, 45000, 500000} {
		for _, rate := range []float64{0, 3.2, 6.5, 15} {
			for _, term := range domain.AllowedTermYears {
				result := Compute(domain.EstimateInput{
					LoanBalance:  balance,
					InterestRate: rate,
					TermYears:    term,
					IncomeLevel:  domain.Income75kTo100k,
				})

				assert.Equal(t, result.StandardMonthly, result.EstimatedMonthly)
				assert.Equal(t, result.StandardTotal, result.EstimatedTotal)
				assert.Zero(t, result.ForgivenAmount)
			}
		}
	}
}

func TestCompute_ForgivenessFixture(t *testing.T) {
	result := Compute(domain.EstimateInput{
		LoanBalance:        45000,
		InterestRate:       6.5,
		TermYears:          10,
		IncomeLevel:        domain.IncomeUnder50k,
		ForgivenessProgram: true,
	})

	// income-based: round(45000*0.10/12) = 375, below the 511 standard
	assert.Equal(t, 375.0, result.EstimatedMonthly)
	assert.Equal(t, 45000.0, result.EstimatedTotal)
	// remaining after 120 payments: 45000 + 45000*0.065*10 - 45000 = 29250
	assert.Equal(t, 24863.0, result.ForgivenAmount)
}

func TestCompute_ForgivenessNeverRaisesPayment(t *testing.T) {
	tiers := []domain.IncomeLevel{
		domain.IncomeUnder50k,
		domain.Income50kTo75k,
		domain.Income75kTo100k,
		domain.IncomeOver100k,
	}

	for _, tier := range tiers {
		for _, balance := range []float64{1000, 25000, 120000, 500000} {
			for _, rate := range []float64{0, 4.0, 9.9, 15} {
				result := Compute(domain.EstimateInput{
					LoanBalance:        balance,
					InterestRate:       rate,
					TermYears:          25,
					IncomeLevel:        tier,
					ForgivenessProgram: true,
				})

				assert.LessOrEqual(t, result.EstimatedMonthly, result.StandardMonthly)
				assert.GreaterOrEqual(t, result.ForgivenAmount, 0.0)
			}
		}
	}
}

func TestCompute_IncomeTierMonotonic(t *testing.T) {
	tiers := []domain.IncomeLevel{
		domain.IncomeUnder50k,
		domain.Income50kTo75k,
		domain.Income75kTo100k,
		domain.IncomeOver100k,
	}

	// 375, 450, then capped at the 511 standard payment for the top tiers
	prev := -1.0
	for _, tier := range tiers {
		result := Compute(domain.EstimateInput{
			LoanBalance:        45000,
			InterestRate:       6.5,
			TermYears:          10,
			IncomeLevel:        tier,
			ForgivenessProgram: true,
		})

		assert.GreaterOrEqual(t, result.EstimatedMonthly, prev,
			"tier %s lowered the payment", tier)
		prev = result.EstimatedMonthly
	}
}

func TestEstimate_SavesHistoryAndCaches(t *testing.T) {
	mockRepo := &MockEstimateRepository{}
	svc := NewEstimatorService(mockRepo, repository.NewMockCache())

	input := domain.EstimateInput{
		LoanBalance:  45000,
		InterestRate: 6.5,
		TermYears:    10,
		IncomeLevel:  domain.IncomeUnder50k,
	}

	first := svc.Estimate(input)
	second := svc.Estimate(input)

	require.Equal(t, first, second)
	// second call is served from cache, so only one history record
	assert.Equal(t, 1, mockRepo.SaveCalls)
}

func TestEstimate_SaveFailureIsNotFatal(t *testing.T) {
	mockRepo := &MockEstimateRepository{ForceError: true}
	svc := NewEstimatorService(mockRepo, repository.NewMockCache())

	result := svc.Estimate(domain.EstimateInput{
		LoanBalance:  12000,
		InterestRate: 0,
		TermYears:    10,
		IncomeLevel:  domain.IncomeUnder50k,
	})

	assert.Equal(t, 100.0, result.StandardMonthly)
	assert.Equal(t, 1, mockRepo.SaveCalls)
}
