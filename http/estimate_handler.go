package http

import (
	"encoding/json"
	"net/http"

	"student-loan-estimator/domain"
	"student-loan-estimator/service"
)

type EstimateHandler struct {
	service *service.EstimatorService
}

func NewEstimateHandler(service *service.EstimatorService) *EstimateHandler {
	return &EstimateHandler{service: service}
}

type estimateResponse struct {
	Input     domain.EstimateInput  `json:"input"`
	Result    domain.EstimateResult `json:"result"`
	Formatted FormattedEstimate     `json:"formatted"`
}

func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.EstimateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Coerción del formulario: valores fuera de rango se ajustan, no se rechazan
	input = service.SanitizeInput(input)

	result := h.service.Estimate(input)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(estimateResponse{
		Input:     input,
		Result:    result,
		Formatted: formatEstimate(result),
	})
}
