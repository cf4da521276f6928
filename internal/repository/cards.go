package repository

import (
	"fmt"

	"github.com/pftrack/finance-service/internal/models"
)

// CreateCard creates a new card in the database
func (r *Repository) CreateCard(card *models.Card) error {
	query := `
		INSERT INTO finance.cards (user_id, name, last_four_digits, brand, credit_limit, closing_day, due_day, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, card.UserID, card.Name, card.LastFourDigits, card.Brand,
		card.Limit, card.ClosingDay, card.DueDay, card.Color).
		Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

// FindCardsByUser retrieves all cards belonging to a user
func (r *Repository) FindCardsByUser(userID int64) ([]models.Card, error) {
	query := `
		SELECT id, user_id, name, last_four_digits, brand, credit_limit, closing_day, due_day, color, created_at, updated_at
		FROM finance.cards
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cards: %w", err)
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.LastFourDigits, &c.Brand,
			&c.Limit, &c.ClosingDay, &c.DueDay, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}
