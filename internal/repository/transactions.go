package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pftrack/finance-service/internal/models"
)

const transactionColumns = `id, user_id, card_id, description, amount, type, category, date, status,
	installments, current_installment, is_recurring, notes, created_at, updated_at`

// CreateTransaction creates a new transaction in the database
func (r *Repository) CreateTransaction(tx *models.Transaction) error {
	query := `
		INSERT INTO finance.transactions (user_id, card_id, description, amount, type, category, date, status,
			installments, current_installment, is_recurring, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, tx.UserID, tx.CardID, tx.Description, tx.Amount, tx.Type, tx.Category,
		tx.Date, tx.Status, tx.Installments, tx.CurrentInstallment, tx.IsRecurring, tx.Notes).
		Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// FindTransactionsByUser retrieves all transactions of a user, newest first
func (r *Repository) FindTransactionsByUser(userID int64) ([]models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM finance.transactions
		WHERE user_id = $1
		ORDER BY date DESC`, transactionColumns)
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}
	return scanTransactions(rows)
}

// FindTransactionsByUserAndDateRange retrieves a user's transactions within [start, end]
func (r *Repository) FindTransactionsByUserAndDateRange(userID int64, start, end time.Time) ([]models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM finance.transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC`, transactionColumns)
	rows, err := r.db.Query(query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}
	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CardID, &t.Description, &t.Amount, &t.Type, &t.Category,
			&t.Date, &t.Status, &t.Installments, &t.CurrentInstallment, &t.IsRecurring, &t.Notes,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
