package service

import (
	"math"

	"student-loan-estimator/domain"
)

type ScheduleService struct {
	estimator *EstimatorService
}

func NewScheduleService(estimator *EstimatorService) *ScheduleService {
	return &ScheduleService{estimator: estimator}
}

// BuildSchedule simula el pago mes a mes para el estimado. Under the
// forgiveness path the walk stops at the 120th qualifying payment and the
// remainder is reported as forgiven; otherwise it runs until the balance is
// cleared, capped at the term length.
func (s *ScheduleService) BuildSchedule(input domain.ScheduleInput) domain.ScheduleResult {
	estimate := s.estimator.Estimate(input.Estimate)

	monthlyPayment := estimate.StandardMonthly
	maxMonths := input.Estimate.TermYears * MonthsPerYear
	if input.Estimate.ForgivenessProgram {
		monthlyPayment = estimate.EstimatedMonthly
		maxMonths = ForgivenessPayments
	}

	monthlyRate := input.Estimate.InterestRate / 100 / MonthsPerYear

	rows := []domain.ScheduleRow{}
	balance := input.Estimate.LoanBalance
	totalPaid := 0.0
	totalInterest := 0.0
	month := 0

	for month < maxMonths && balance > ScheduleBalanceTolerance {
		month++

		interest := balance * monthlyRate

		// Última cuota: no pagar más que el balance con su interés
		payment := monthlyPayment
		if payment > balance+interest {
			payment = balance + interest
		}

		principal := payment - interest
		if principal < 0 {
			// El pago por ingreso puede no cubrir el interés; el balance no crece
			principal = 0
		}
		balance -= principal

		totalPaid += payment
		totalInterest += interest

		rows = append(rows, domain.ScheduleRow{
			Month:            month,
			Payment:          roundToUnit(payment),
			Interest:         roundToUnit(interest),
			Principal:        roundToUnit(principal),
			RemainingBalance: roundToUnit(math.Max(0, balance)),
		})
	}

	result := domain.ScheduleResult{
		Rows:          rows,
		Months:        month,
		TotalPaid:     roundToUnit(totalPaid),
		TotalInterest: roundToUnit(totalInterest),
	}

	if input.Estimate.ForgivenessProgram {
		// La cifra condonada canónica viene del estimado, no del recorrido
		result.ForgivenAmount = estimate.ForgivenAmount
	}

	return result
}
