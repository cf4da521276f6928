package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TypeExpense = "EXPENSE"
	TypeIncome  = "INCOME"
)

// Payment statuses shared by transactions, loans and financings
const (
	StatusPending   = "PENDING"
	StatusPaid      = "PAID"
	StatusOverdue   = "OVERDUE"
	StatusCancelled = "CANCELLED"
)

// Transaction represents a financial transaction
type Transaction struct {
	ID                 int64           `json:"id"`
	UserID             int64           `json:"user_id"`
	CardID             *int64          `json:"card_id,omitempty"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	Type               string          `json:"type"`
	Category           string          `json:"category"`
	Date               time.Time       `json:"date"`
	Status             string          `json:"status"`
	Installments       int             `json:"installments"`
	CurrentInstallment int             `json:"current_installment"`
	IsRecurring        bool            `json:"is_recurring"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
