package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// Summary returns the current-month financial summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.FinancialSummary(userID, time.Now())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// ListInsights returns the user's insights ordered by priority then recency
func (h *Handler) ListInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	insights, err := h.svc.Insights(userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, insights)
}

// ListUnreadInsights returns the user's unread insights
func (h *Handler) ListUnreadInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	insights, err := h.svc.UnreadInsights(userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, insights)
}

// GenerateInsights runs the insight engine for the authenticated user
func (h *Handler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.svc.GenerateInsights(userID, time.Now()); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Insights generated successfully"})
}

// MarkInsightRead flags one insight as read
func (h *Handler) MarkInsightRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	insightID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid insight ID", http.StatusBadRequest)
		return
	}

	if err := h.svc.MarkInsightRead(userID, insightID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Insight marked as read"})
}
