package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pftrack/finance-service/internal/models"
)

// LoanInput carries the fields accepted when registering a loan
type LoanInput struct {
	Description  string          `json:"description"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Installments int             `json:"installments"`
	DueDay       int             `json:"due_day"`
	StartDate    time.Time       `json:"start_date"`
	Notes        string          `json:"notes"`
}

// CreateLoan validates and registers a new loan
func (s *Service) CreateLoan(userID int64, in LoanInput) (*models.Loan, error) {
	if !in.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be greater than 0", ErrValidation)
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

	loan := &models.Loan{
		UserID:           userID,
		Description:      in.Description,
		TotalAmount:      in.TotalAmount,
		RemainingAmount:  in.TotalAmount,
		InterestRate:     in.InterestRate,
		Installments:     in.Installments,
		PaidInstallments: 0,
		DueDay:           in.DueDay,
		StartDate:        in.StartDate,
		EndDate:          in.StartDate.AddDate(0, in.Installments, 0),
		Status:           models.StatusPending,
		Notes:            in.Notes,
	}

	if err := s.store.CreateLoan(loan); err != nil {
		return nil, err
	}

	s.log.Infof("Loan created for user %d: %s over %d installments", userID,
		loan.TotalAmount.StringFixed(2), loan.Installments)
	return loan, nil
}

// Loans lists the user's loans
func (s *Service) Loans(userID int64) ([]models.Loan, error) {
	return s.store.FindLoansByUser(userID)
}
