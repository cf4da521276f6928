package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pftrack/finance-service/internal/service"
)

// CreateLoan registers a new loan
func (h *Handler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var in service.LoanInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	loan, err := h.svc.CreateLoan(userID, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, loan)
}

// ListLoans returns the user's loans
func (h *Handler) ListLoans(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	loans, err := h.svc.Loans(userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loans)
}
