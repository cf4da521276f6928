package service

import (
	"time"

	"github.com/pftrack/finance-service/internal/models"
)

// Store is the persistence contract the service layer depends on.
// *repository.Repository is the production implementation.
type Store interface {
	CreateUser(user *models.User) error
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id int64) (*models.User, error)
	ListUserIDs() ([]int64, error)

	CreateCard(card *models.Card) error
	FindCardsByUser(userID int64) ([]models.Card, error)

	CreateTransaction(tx *models.Transaction) error
	FindTransactionsByUser(userID int64) ([]models.Transaction, error)
	FindTransactionsByUserAndDateRange(userID int64, start, end time.Time) ([]models.Transaction, error)

	CreateIncome(income *models.Income) error
	FindIncomesByUser(userID int64) ([]models.Income, error)

	CreateLoan(loan *models.Loan) error
	FindLoansByUser(userID int64) ([]models.Loan, error)
	FindActiveLoansByUser(userID int64) ([]models.Loan, error)

	CreateFinancing(f *models.Financing) error
	FindFinancingsByUser(userID int64) ([]models.Financing, error)
	FindActiveFinancingsByUser(userID int64) ([]models.Financing, error)

	SaveInsight(insight *models.FinancialInsight) error
	FindInsightsByUser(userID int64) ([]models.FinancialInsight, error)
	FindUnreadInsightsByUser(userID int64) ([]models.FinancialInsight, error)
	MarkInsightRead(userID, insightID int64) error
}

// Notifier delivers out-of-band alerts for urgent insights
type Notifier interface {
	SendInsightAlert(to, name string, insight *models.FinancialInsight) error
}
