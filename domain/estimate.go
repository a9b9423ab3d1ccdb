package domain

type IncomeLevel string

const (
	IncomeUnder50k  IncomeLevel = "under50k"
	Income50kTo75k  IncomeLevel = "50k-75k"
	Income75kTo100k IncomeLevel = "75k-100k"
	IncomeOver100k  IncomeLevel = "over100k"
)

// AllowedTermYears are the only repayment terms the form offers.
var AllowedTermYears = []int{10, 15, 20, 25}

type EstimateInput struct {
	LoanBalance        float64     `json:"loan_balance"`
	InterestRate       float64     `json:"interest_rate"`
	TermYears          int         `json:"term_years"`
	IncomeLevel        IncomeLevel `json:"income_level"`
	ForgivenessProgram bool        `json:"forgiveness_program"`
}

type EstimateResult struct {
	StandardMonthly  float64 `json:"standard_monthly"`
	StandardTotal    float64 `json:"standard_total"`
	EstimatedMonthly float64 `json:"estimated_monthly"`
	EstimatedTotal   float64 `json:"estimated_total"`
	ForgivenAmount   float64 `json:"forgiven_amount"`
}
