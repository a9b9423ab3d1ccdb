package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"student-loan-estimator/domain"
	"student-loan-estimator/logger"
	"student-loan-estimator/service"
)

type TermsHandler struct {
	service *service.TermsService
}

func NewTermsHandler(service *service.TermsService) *TermsHandler {
	return &TermsHandler{service: service}
}

func (h *TermsHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.TermComparisonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Error("error decoding term comparison request", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CompareTerms(input)
	if err != nil {
		logger.Error("error comparing terms", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Codificar en buffer primero para no escribir el header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		logger.Error("error encoding term comparison response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("error writing term comparison response", zap.Error(err))
	}
}
