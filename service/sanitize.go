package service

import "student-loan-estimator/domain"

// SanitizeInput applies the form-layer rules before calculation: negative or
// NaN-coerced numbers have already arrived as 0, so out-of-range values are
// clamped rather than rejected, the term snaps to the nearest offered value
// and an unknown income tier falls back to the lowest one.
func SanitizeInput(input domain.EstimateInput) domain.EstimateInput {
	if input.LoanBalance < MinLoanBalance {
		input.LoanBalance = MinLoanBalance
	}
	if input.LoanBalance > MaxLoanBalance {
		input.LoanBalance = MaxLoanBalance
	}

	if input.InterestRate < 0 {
		input.InterestRate = 0
	}
	if input.InterestRate > MaxInterestRate {
		input.InterestRate = MaxInterestRate
	}

	input.TermYears = snapTerm(input.TermYears)

	switch input.IncomeLevel {
	case domain.IncomeUnder50k, domain.Income50kTo75k,
		domain.Income75kTo100k, domain.IncomeOver100k:
	default:
		input.IncomeLevel = domain.IncomeUnder50k
	}

	return input
}

// snapTerm maps an arbitrary year count onto the closest offered term,
// resolving ties downward.
func snapTerm(years int) int {
	if years <= 0 {
		return DefaultTermYears
	}

	best := domain.AllowedTermYears[0]
	bestDist := abs(years - best)
	for _, term := range domain.AllowedTermYears[1:] {
		if d := abs(years - term); d < bestDist {
			best = term
			bestDist = d
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
