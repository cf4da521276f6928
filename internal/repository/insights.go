package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pftrack/finance-service/internal/models"
)

// SaveInsight persists a new insight. Insights are append-only.
func (r *Repository) SaveInsight(insight *models.FinancialInsight) error {
	metadata, err := json.Marshal(insight.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode insight metadata: %w", err)
	}

	query := `
		INSERT INTO finance.insights (user_id, title, description, type, priority, is_read, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err = r.db.QueryRow(query, insight.UserID, insight.Title, insight.Description, insight.Type,
		insight.Priority, insight.IsRead, metadata).
		Scan(&insight.ID, &insight.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save insight: %w", err)
	}
	return nil
}

// FindInsightsByUser retrieves a user's insights ordered by priority, newest first within a priority
func (r *Repository) FindInsightsByUser(userID int64) ([]models.FinancialInsight, error) {
	query := `
		SELECT id, user_id, title, description, type, priority, is_read, metadata, created_at
		FROM finance.insights
		WHERE user_id = $1
		ORDER BY priority DESC, created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find insights: %w", err)
	}
	return scanInsights(rows)
}

// FindUnreadInsightsByUser retrieves a user's unread insights in the same order
func (r *Repository) FindUnreadInsightsByUser(userID int64) ([]models.FinancialInsight, error) {
	query := `
		SELECT id, user_id, title, description, type, priority, is_read, metadata, created_at
		FROM finance.insights
		WHERE user_id = $1 AND is_read = FALSE
		ORDER BY priority DESC, created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find unread insights: %w", err)
	}
	return scanInsights(rows)
}

// MarkInsightRead flags an insight as read. Returns ErrNotFound if the insight
// does not exist or belongs to another user.
func (r *Repository) MarkInsightRead(userID, insightID int64) error {
	res, err := r.db.Exec(`UPDATE finance.insights SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		insightID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark insight read: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark insight read: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanInsights(rows *sql.Rows) ([]models.FinancialInsight, error) {
	defer rows.Close()

	var insights []models.FinancialInsight
	for rows.Next() {
		var ins models.FinancialInsight
		var metadata []byte
		if err := rows.Scan(&ins.ID, &ins.UserID, &ins.Title, &ins.Description, &ins.Type,
			&ins.Priority, &ins.IsRead, &metadata, &ins.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan insight: %w", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &ins.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode insight metadata: %w", err)
			}
		}
		insights = append(insights, ins)
	}
	return insights, rows.Err()
}
