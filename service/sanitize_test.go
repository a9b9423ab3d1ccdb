package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"student-loan-estimator/domain"
)

func TestSanitizeInput_ClampsBalance(t *testing.T) {
	low := SanitizeInput(domain.EstimateInput{LoanBalance: 0})
	assert.Equal(t, MinLoanBalance, low.LoanBalance)

	high := SanitizeInput(domain.EstimateInput{LoanBalance: 2_000_000})
	assert.Equal(t, MaxLoanBalance, high.LoanBalance)
}

func TestSanitizeInput_ClampsRate(t *testing.T) {
	negative := SanitizeInput(domain.EstimateInput{InterestRate: -3})
	assert.Equal(t, 0.0, negative.InterestRate)

	high := SanitizeInput(domain.EstimateInput{InterestRate: 40})
	assert.Equal(t, MaxInterestRate, high.InterestRate)
}

func TestSanitizeInput_SnapsTerm(t *testing.T) {
	cases := map[int]int{
		0:   DefaultTermYears,
		-4:  DefaultTermYears,
		10:  10,
		12:  10,
		13:  15,
		18:  20,
		25:  25,
		40:  25,
		100: 25,
	}

	for raw, want := range cases {
		got := SanitizeInput(domain.EstimateInput{TermYears: raw})
		assert.Equal(t, want, got.TermYears, "term %d", raw)
	}
}

func TestSanitizeInput_DefaultsIncomeLevel(t *testing.T) {
	unknown := SanitizeInput(domain.EstimateInput{IncomeLevel: "about-tree-fiddy"})
	assert.Equal(t, domain.IncomeUnder50k, unknown.IncomeLevel)

	known := SanitizeInput(domain.EstimateInput{IncomeLevel: domain.IncomeOver100k})
	assert.Equal(t, domain.IncomeOver100k, known.IncomeLevel)
}
