package repository

import "student-loan-estimator/domain"

type EstimateRepository interface {
	Save(input domain.EstimateInput, result domain.EstimateResult) error
	Recent(limit int) []EstimateRecord
}
