package domain

type ScheduleInput struct {
	Estimate EstimateInput `json:"estimate"`
}

type ScheduleRow struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type ScheduleResult struct {
	Rows           []ScheduleRow `json:"rows"`
	Months         int           `json:"months"`
	TotalPaid      float64       `json:"total_paid"`
	TotalInterest  float64       `json:"total_interest"`
	ForgivenAmount float64       `json:"forgiven_amount,omitempty"`
}
