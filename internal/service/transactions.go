package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pftrack/finance-service/internal/models"
)

// TransactionInput carries the fields accepted when recording a transaction
type TransactionInput struct {
	CardID       *int64          `json:"card_id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type"`
	Category     string          `json:"category"`
	Date         time.Time       `json:"date"`
	Installments int             `json:"installments"`
	IsRecurring  bool            `json:"is_recurring"`
	Notes        string          `json:"notes"`
}

// CreateTransaction validates and records a new transaction
func (s *Service) CreateTransaction(userID int64, in TransactionInput) (*models.Transaction, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	}
	if in.Type != models.TypeExpense && in.Type != models.TypeIncome {
		return nil, fmt.Errorf("%w: type must be EXPENSE or INCOME", ErrValidation)
	}
	if in.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	installments := in.Installments
	if installments == 0 {
		installments = 1
	}
	if installments < 1 {
		return nil, fmt.Errorf("%w: installments must be at least 1", ErrValidation)
	}

	tx := &models.Transaction{
		UserID:             userID,
		CardID:             in.CardID,
		Description:        in.Description,
		Amount:             in.Amount,
		Type:               in.Type,
		Category:           in.Category,
		Date:               in.Date,
		Status:             models.StatusPending,
		Installments:       installments,
		CurrentInstallment: 1,
		IsRecurring:        in.IsRecurring,
		Notes:              in.Notes,
	}

	if err := s.store.CreateTransaction(tx); err != nil {
		return nil, err
	}

	s.log.Infof("Transaction created for user %d: %s %s", userID, tx.Type, tx.Amount.StringFixed(2))
	return tx, nil
}

// Transactions lists the user's transactions, optionally limited to a date range
func (s *Service) Transactions(userID int64, start, end *time.Time) ([]models.Transaction, error) {
	if start != nil && end != nil {
		return s.store.FindTransactionsByUserAndDateRange(userID, *start, *end)
	}
	return s.store.FindTransactionsByUser(userID)
}
