package repository

import (
	"fmt"

	"github.com/pftrack/finance-service/internal/models"
)

// CreateIncome creates a new income record in the database
func (r *Repository) CreateIncome(income *models.Income) error {
	query := `
		INSERT INTO finance.incomes (user_id, description, amount, received_date, is_recurring, category, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, income.UserID, income.Description, income.Amount, income.ReceivedDate,
		income.IsRecurring, income.Category, income.Notes).
		Scan(&income.ID, &income.CreatedAt, &income.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}
	return nil
}

// FindIncomesByUser retrieves all income records of a user, newest first
func (r *Repository) FindIncomesByUser(userID int64) ([]models.Income, error) {
	query := `
		SELECT id, user_id, description, amount, received_date, is_recurring, category, notes, created_at, updated_at
		FROM finance.incomes
		WHERE user_id = $1
		ORDER BY received_date DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find incomes: %w", err)
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		var i models.Income
		if err := rows.Scan(&i.ID, &i.UserID, &i.Description, &i.Amount, &i.ReceivedDate,
			&i.IsRecurring, &i.Category, &i.Notes, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		incomes = append(incomes, i)
	}
	return incomes, rows.Err()
}
