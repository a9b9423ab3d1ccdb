package http

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"student-loan-estimator/domain"
)

var printer = message.NewPrinter(language.English)

// Currency renders a whole-unit amount as the page displays it: dollar sign,
// grouped thousands, no decimals.
func Currency(amount float64) string {
	return printer.Sprintf("$%d", int64(amount))
}

// FormattedEstimate carries the display strings for every monetary figure.
type FormattedEstimate struct {
	StandardMonthly  string `json:"standard_monthly"`
	StandardTotal    string `json:"standard_total"`
	EstimatedMonthly string `json:"estimated_monthly"`
	EstimatedTotal   string `json:"estimated_total"`
	ForgivenAmount   string `json:"forgiven_amount"`
}

func formatEstimate(result domain.EstimateResult) FormattedEstimate {
	return FormattedEstimate{
		StandardMonthly:  Currency(result.StandardMonthly),
		StandardTotal:    Currency(result.StandardTotal),
		EstimatedMonthly: Currency(result.EstimatedMonthly),
		EstimatedTotal:   Currency(result.EstimatedTotal),
		ForgivenAmount:   Currency(result.ForgivenAmount),
	}
}
