package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pftrack/finance-service/internal/service"
)

// CreateCard handles card registration
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var in service.CardInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	card, err := h.svc.CreateCard(userID, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, card)
}

// ListCards returns the user's cards
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	cards, err := h.svc.Cards(userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cards)
}
