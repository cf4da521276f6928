package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card represents a credit card registered by a user. Only display metadata is
// stored, never the full card number.
type Card struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	Name           string          `json:"name"`
	LastFourDigits string          `json:"last_four_digits,omitempty"`
	Brand          string          `json:"brand,omitempty"`
	Limit          decimal.Decimal `json:"limit"`
	ClosingDay     int             `json:"closing_day"`
	DueDay         int             `json:"due_day"`
	Color          string          `json:"color,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
