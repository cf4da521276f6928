package models

import "time"

// Insight types
const (
	InsightWarning    = "WARNING"
	InsightSuccess    = "SUCCESS"
	InsightInfo       = "INFO"
	InsightSuggestion = "SUGGESTION"
)

// FinancialInsight is a generated observation about a user's finances.
// Insights are append-only: generation never updates or removes existing rows.
type FinancialInsight struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"user_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Priority    int            `json:"priority"` // 1-5, higher is more urgent
	IsRead      bool           `json:"is_read"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
