package service

import "student-loan-estimator/domain"

const (
	MinLoanBalance  = 1_000.0
	MaxLoanBalance  = 500_000.0
	MaxInterestRate = 15.0 // % anual

	DefaultTermYears = 10
	MonthsPerYear    = 12

	// Ventana de condonación: 120 pagos calificados (10 años)
	ForgivenessPayments = 120
	ForgivenessYears    = 10
	ForgivenessWriteOff = 0.85

	// tolerancia para considerar el balance pagado en el cronograma
	ScheduleBalanceTolerance = 0.5
)

// incomeFactors is the fixed income-driven repayment table: fraction of the
// balance charged per year for each income tier.
var incomeFactors = map[domain.IncomeLevel]float64{
	domain.IncomeUnder50k:  0.10,
	domain.Income50kTo75k:  0.12,
	domain.Income75kTo100k: 0.15,
	domain.IncomeOver100k:  0.18,
}
