package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income represents money received by a user
type Income struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	ReceivedDate time.Time       `json:"received_date"`
	IsRecurring  bool            `json:"is_recurring"`
	Category     string          `json:"category"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
