package service

import (
	"errors"

	"student-loan-estimator/domain"
)

type TermsService struct{}

func NewTermsService() *TermsService {
	return &TermsService{}
}

// CompareTerms runs the standard calculation across every offered term so the
// form can show a side-by-side comparison for the same balance and rate.
func (s *TermsService) CompareTerms(
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	if input.LoanBalance <= 0 {
		return domain.TermComparisonResult{}, errors.New("balance inválido")
	}
	if input.InterestRate < 0 {
		return domain.TermComparisonResult{}, errors.New("tasa inválida")
	}

	sanitized := SanitizeInput(domain.EstimateInput{
		LoanBalance:  input.LoanBalance,
		InterestRate: input.InterestRate,
		TermYears:    DefaultTermYears,
		IncomeLevel:  domain.IncomeUnder50k,
	})

	options := make([]domain.TermOption, 0, len(domain.AllowedTermYears))
	for _, term := range domain.AllowedTermYears {
		sanitized.TermYears = term
		result := Compute(sanitized)

		options = append(options, domain.TermOption{
			TermYears:      term,
			MonthlyPayment: result.StandardMonthly,
			TotalPayment:   result.StandardTotal,
			TotalInterest:  result.StandardTotal - sanitized.LoanBalance,
		})
	}

	return domain.TermComparisonResult{Options: options}, nil
}
