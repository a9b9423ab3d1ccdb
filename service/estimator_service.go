package service

import (
	"encoding/json"
	"fmt"
	"math"

	"go.uber.org/zap"

	"student-loan-estimator/domain"
	"student-loan-estimator/logger"
	"student-loan-estimator/repository"
)

// roundToUnit redondea al entero más cercano (sin centavos, igual que la vista)
func roundToUnit(value float64) float64 {
	return math.Round(value)
}

// Compute derives all payment figures from a sanitized input. Deterministic,
// no side effects; zero interest is a valid edge case handled by the
// straight-line branch.
func Compute(input domain.EstimateInput) domain.EstimateResult {
	monthlyRate := input.InterestRate / 100 / MonthsPerYear
	totalPayments := input.TermYears * MonthsPerYear

	var standardMonthly float64
	if monthlyRate == 0 {
		standardMonthly = roundToUnit(input.LoanBalance / float64(totalPayments))
	} else {
		growth := math.Pow(1+monthlyRate, float64(totalPayments))
		standardMonthly = roundToUnit(input.LoanBalance * monthlyRate * growth / (growth - 1))
	}
	standardTotal := standardMonthly * float64(totalPayments)

	result := domain.EstimateResult{
		StandardMonthly:  standardMonthly,
		StandardTotal:    standardTotal,
		EstimatedMonthly: standardMonthly,
		EstimatedTotal:   standardTotal,
	}

	if !input.ForgivenessProgram {
		return result
	}

	incomeBasedMonthly := roundToUnit(input.LoanBalance * incomeFactors[input.IncomeLevel] / MonthsPerYear)
	estimatedMonthly := math.Min(standardMonthly, incomeBasedMonthly)

	paidBeforeForgiveness := estimatedMonthly * ForgivenessPayments

	// Acumulación simplificada de interés simple a 10 años, no amortización real
	accrued := input.LoanBalance + input.LoanBalance*(input.InterestRate/100)*ForgivenessYears
	remaining := math.Max(0, accrued-paidBeforeForgiveness)

	result.EstimatedMonthly = estimatedMonthly
	result.EstimatedTotal = paidBeforeForgiveness
	result.ForgivenAmount = roundToUnit(remaining * ForgivenessWriteOff)

	return result
}

type EstimatorService struct {
	repo  repository.EstimateRepository
	cache repository.CacheRepository
}

// NewEstimatorService creates a new EstimatorService with the given
// repository and cache.
func NewEstimatorService(repo repository.EstimateRepository,
	cache repository.CacheRepository,
) *EstimatorService {
	return &EstimatorService{repo: repo, cache: cache}
}

// Estimate computes the figures for a sanitized input, recording the result
// in the history repository and the cache. Persistence failures are logged
// and never surface to the caller.
func (s *EstimatorService) Estimate(input domain.EstimateInput) domain.EstimateResult {
	key := cacheKey(input)

	if cached, ok := s.cache.Get(key); ok {
		var result domain.EstimateResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result
		}
		logger.Warn("discarding unreadable cached estimate", zap.String("key", key))
	}

	result := Compute(input)

	if err := s.repo.Save(input, result); err != nil {
		logger.Warn("failed to save estimate history", zap.Error(err))
	}

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(encoded)); err != nil {
			logger.Warn("failed to cache estimate", zap.Error(err))
		}
	}

	return result
}

func cacheKey(input domain.EstimateInput) string {
	return fmt.Sprintf("estimate:%.0f:%.4f:%d:%s:%t",
		input.LoanBalance,
		input.InterestRate,
		input.TermYears,
		input.IncomeLevel,
		input.ForgivenessProgram,
	)
}
