package repository

import (
	"database/sql"
	"fmt"

	"github.com/pftrack/finance-service/internal/models"
)

const financingColumns = `id, user_id, description, total_amount, down_payment, remaining_amount, interest_rate,
	installments, paid_installments, monthly_payment, due_day, start_date, end_date, status, type, notes,
	created_at, updated_at`

// CreateFinancing creates a new financing in the database
func (r *Repository) CreateFinancing(f *models.Financing) error {
	query := `
		INSERT INTO finance.financings (user_id, description, total_amount, down_payment, remaining_amount,
			interest_rate, installments, paid_installments, monthly_payment, due_day, start_date, end_date,
			status, type, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, f.UserID, f.Description, f.TotalAmount, f.DownPayment, f.RemainingAmount,
		f.InterestRate, f.Installments, f.PaidInstallments, f.MonthlyPayment, f.DueDay,
		f.StartDate, f.EndDate, f.Status, f.Type, f.Notes).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create financing: %w", err)
	}
	return nil
}

// FindFinancingsByUser retrieves all financings of a user
func (r *Repository) FindFinancingsByUser(userID int64) ([]models.Financing, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM finance.financings
		WHERE user_id = $1
		ORDER BY start_date DESC`, financingColumns)
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find financings: %w", err)
	}
	return scanFinancings(rows)
}

// FindActiveFinancingsByUser retrieves financings that are neither paid off nor cancelled
func (r *Repository) FindActiveFinancingsByUser(userID int64) ([]models.Financing, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM finance.financings
		WHERE user_id = $1 AND status NOT IN ('PAID', 'CANCELLED')
		ORDER BY start_date DESC`, financingColumns)
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active financings: %w", err)
	}
	return scanFinancings(rows)
}

func scanFinancings(rows *sql.Rows) ([]models.Financing, error) {
	defer rows.Close()

	var financings []models.Financing
	for rows.Next() {
		var f models.Financing
		if err := rows.Scan(&f.ID, &f.UserID, &f.Description, &f.TotalAmount, &f.DownPayment,
			&f.RemainingAmount, &f.InterestRate, &f.Installments, &f.PaidInstallments, &f.MonthlyPayment,
			&f.DueDay, &f.StartDate, &f.EndDate, &f.Status, &f.Type, &f.Notes,
			&f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan financing: %w", err)
		}
		financings = append(financings, f)
	}
	return financings, rows.Err()
}
