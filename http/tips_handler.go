package http

import (
	"encoding/json"
	"net/http"
)

// repaymentTips is the static content shown next to the results. It never
// affects the computed figures.
var repaymentTips = []string{
	"Pay more than the minimum when you can; extra payments go straight to principal.",
	"Set up autopay, most servicers discount the interest rate for it.",
	"Apply windfalls such as tax refunds directly to the loan balance.",
	"Refinancing can lower your rate but disqualifies federal loans from forgiveness.",
	"Recertify your income every year if you are on an income-driven plan.",
	"Public service employment may qualify you for forgiveness after 120 payments.",
}

const disclaimer = "These figures are estimates for planning purposes only " +
	"and are not a loan offer. Actual payments depend on your servicer's " +
	"terms and the current rules of any forgiveness program."

type TipsHandler struct{}

func NewTipsHandler() *TipsHandler {
	return &TipsHandler{}
}

type tipsResponse struct {
	Tips       []string `json:"tips"`
	Disclaimer string   `json:"disclaimer"`
}

func (h *TipsHandler) GetTips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tipsResponse{
		Tips:       repaymentTips,
		Disclaimer: disclaimer,
	})
}
