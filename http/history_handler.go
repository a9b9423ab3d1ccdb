package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"student-loan-estimator/repository"
)

const defaultHistoryLimit = 20

type HistoryHandler struct {
	repo repository.EstimateRepository
}

func NewHistoryHandler(repo repository.EstimateRepository) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

func (h *HistoryHandler) RecentEstimates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.repo.Recent(limit))
}
