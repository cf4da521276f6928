package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pftrack/finance-service/internal/models"
)

// IncomeInput carries the fields accepted when recording an income
type IncomeInput struct {
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	ReceivedDate time.Time       `json:"received_date"`
	IsRecurring  bool            `json:"is_recurring"`
	Category     string          `json:"category"`
	Notes        string          `json:"notes"`
}

// CreateIncome validates and records a new income
func (s *Service) CreateIncome(userID int64, in IncomeInput) (*models.Income, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	}
	category := in.Category
	if category == "" {
		category = "salary"
	}

	income := &models.Income{
		UserID:       userID,
		Description:  in.Description,
		Amount:       in.Amount,
		ReceivedDate: in.ReceivedDate,
		IsRecurring:  in.IsRecurring,
		Category:     category,
		Notes:        in.Notes,
	}

	if err := s.store.CreateIncome(income); err != nil {
		return nil, err
	}

	s.log.Infof("Income created for user %d: %s", userID, income.Amount.StringFixed(2))
	return income, nil
}

// Incomes lists the user's income records
func (s *Service) Incomes(userID int64) ([]models.Income, error) {
	return s.store.FindIncomesByUser(userID)
}
