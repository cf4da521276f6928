package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pftrack/finance-service/internal/service"
)

// CreateTransaction records a new transaction
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var in service.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.CreateTransaction(userID, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

// ListTransactions returns the user's transactions, optionally filtered by
// ?start=...&end=... (RFC 3339)
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var start, end *time.Time
	if s := r.URL.Query().Get("start"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "Invalid start date", http.StatusBadRequest)
			return
		}
		start = &t
	}
	if e := r.URL.Query().Get("end"); e != "" {
		t, err := time.Parse(time.RFC3339, e)
		if err != nil {
			http.Error(w, "Invalid end date", http.StatusBadRequest)
			return
		}
		end = &t
	}

	txs, err := h.svc.Transactions(userID, start, end)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, txs)
}
