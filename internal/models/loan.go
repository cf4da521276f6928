package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan represents a personal loan taken by a user
type Loan struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"user_id"`
	Description      string          `json:"description"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"`
	InterestRate     decimal.Decimal `json:"interest_rate"` // annual, percent
	Installments     int             `json:"installments"`
	PaidInstallments int             `json:"paid_installments"`
	DueDay           int             `json:"due_day"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
