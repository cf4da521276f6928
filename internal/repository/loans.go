package repository

import (
	"database/sql"
	"fmt"

	"github.com/pftrack/finance-service/internal/models"
)

const loanColumns = `id, user_id, description, total_amount, remaining_amount, interest_rate,
	installments, paid_installments, due_day, start_date, end_date, status, notes, created_at, updated_at`

// CreateLoan creates a new loan in the database
func (r *Repository) CreateLoan(loan *models.Loan) error {
	query := `
		INSERT INTO finance.loans (user_id, description, total_amount, remaining_amount, interest_rate,
			installments, paid_installments, due_day, start_date, end_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, loan.UserID, loan.Description, loan.TotalAmount, loan.RemainingAmount,
		loan.InterestRate, loan.Installments, loan.PaidInstallments, loan.DueDay,
		loan.StartDate, loan.EndDate, loan.Status, loan.Notes).
		Scan(&loan.ID, &loan.CreatedAt, &loan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

// FindLoansByUser retrieves all loans of a user
func (r *Repository) FindLoansByUser(userID int64) ([]models.Loan, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM finance.loans
		WHERE user_id = $1
		ORDER BY start_date DESC`, loanColumns)
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find loans: %w", err)
	}
	return scanLoans(rows)
}

// FindActiveLoansByUser retrieves loans that are neither paid off nor cancelled
func (r *Repository) FindActiveLoansByUser(userID int64) ([]models.Loan, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM finance.loans
		WHERE user_id = $1 AND status NOT IN ('PAID', 'CANCELLED')
		ORDER BY start_date DESC`, loanColumns)
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active loans: %w", err)
	}
	return scanLoans(rows)
}

func scanLoans(rows *sql.Rows) ([]models.Loan, error) {
	defer rows.Close()

	var loans []models.Loan
	for rows.Next() {
		var l models.Loan
		if err := rows.Scan(&l.ID, &l.UserID, &l.Description, &l.TotalAmount, &l.RemainingAmount,
			&l.InterestRate, &l.Installments, &l.PaidInstallments, &l.DueDay,
			&l.StartDate, &l.EndDate, &l.Status, &l.Notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
