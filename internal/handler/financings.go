package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pftrack/finance-service/internal/service"
)

// CreateFinancing registers a new financing
func (h *Handler) CreateFinancing(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var in service.FinancingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	financing, err := h.svc.CreateFinancing(userID, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, financing)
}

// ListFinancings returns the user's financings
func (h *Handler) ListFinancings(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	financings, err := h.svc.Financings(userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, financings)
}
