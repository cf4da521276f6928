package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Financing represents a financed purchase (vehicle, property) with a fixed
// monthly payment computed once at creation.
type Financing struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"user_id"`
	Description      string          `json:"description"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	DownPayment      decimal.Decimal `json:"down_payment"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"`
	InterestRate     decimal.Decimal `json:"interest_rate"` // annual, percent
	Installments     int             `json:"installments"`
	PaidInstallments int             `json:"paid_installments"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
	DueDay           int             `json:"due_day"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	Status           string          `json:"status"`
	Type             string          `json:"type"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
