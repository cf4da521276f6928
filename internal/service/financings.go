package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pftrack/finance-service/internal/models"
)

// FinancingInput carries the fields accepted when registering a financing
type FinancingInput struct {
	Description  string          `json:"description"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	DownPayment  decimal.Decimal `json:"down_payment"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Installments int             `json:"installments"`
	DueDay       int             `json:"due_day"`
	StartDate    time.Time       `json:"start_date"`
	Type         string          `json:"type"`
	Notes        string          `json:"notes"`
}

// CreateFinancing validates and registers a new financing. The fixed monthly
// payment is computed once here and never recomputed, even as the remaining
// amount shrinks through payments.
func (s *Service) CreateFinancing(userID int64, in FinancingInput) (*models.Financing, error) {
	if !in.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be greater than 0", ErrValidation)
	}
	if in.DownPayment.IsNegative() {
		return nil, fmt.Errorf("%w: down payment cannot be negative", ErrValidation)
	}
	if in.DownPayment.GreaterThan(in.TotalAmount) {
		return nil, fmt.Errorf("%w: down payment cannot exceed total amount", ErrValidation)
	}
	if in.InterestRate.IsNegative() {
		return nil, fmt.Errorf("%w: interest rate cannot be negative", ErrValidation)
	}
	if in.Installments < 1 {
		return nil, fmt.Errorf("%w: installments must be at least 1", ErrValidation)
	}
	if in.DueDay < 1 || in.DueDay > 31 {
		return nil, fmt.Errorf("%w: due day must be between 1 and 31", ErrValidation)
	}

	financedAmount := in.TotalAmount.Sub(in.DownPayment)
	monthlyRate := in.InterestRate.Div(hundred).Div(decimal.NewFromInt(12))
	monthlyPayment := MonthlyPayment(financedAmount, monthlyRate, in.Installments).Round(2)

	financing := &models.Financing{
		UserID:           userID,
		Description:      in.Description,
		TotalAmount:      in.TotalAmount,
		DownPayment:      in.DownPayment,
		RemainingAmount:  financedAmount,
		InterestRate:     in.InterestRate,
		Installments:     in.Installments,
		PaidInstallments: 0,
		MonthlyPayment:   monthlyPayment,
		DueDay:           in.DueDay,
		StartDate:        in.StartDate,
		EndDate:          in.StartDate.AddDate(0, in.Installments, 0),
		Status:           models.StatusPending,
		Type:             in.Type,
		Notes:            in.Notes,
	}

	if err := s.store.CreateFinancing(financing); err != nil {
		return nil, err
	}

	s.log.Infof("Financing created for user %d: %s, monthly payment %s", userID,
		financing.TotalAmount.StringFixed(2), financing.MonthlyPayment.StringFixed(2))
	return financing, nil
}

// Financings lists the user's financings
func (s *Service) Financings(userID int64) ([]models.Financing, error) {
	return s.store.FindFinancingsByUser(userID)
}
