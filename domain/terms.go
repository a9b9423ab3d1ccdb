package domain

type TermComparisonInput struct {
	LoanBalance  float64 `json:"loan_balance"`
	InterestRate float64 `json:"interest_rate"`
}

type TermOption struct {
	TermYears      int     `json:"term_years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

type TermComparisonResult struct {
	Options []TermOption `json:"options"`
}
