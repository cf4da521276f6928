package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pftrack/finance-service/internal/service"
)

// CreateIncome records a new income
func (h *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var in service.IncomeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	income, err := h.svc.CreateIncome(userID, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, income)
}

// ListIncomes returns the user's income records
func (h *Handler) ListIncomes(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	incomes, err := h.svc.Incomes(userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, incomes)
}
