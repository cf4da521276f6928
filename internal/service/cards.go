package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pftrack/finance-service/internal/models"
)

// CardInput carries the fields accepted when registering a card
type CardInput struct {
	Name           string          `json:"name"`
	LastFourDigits string          `json:"last_four_digits"`
	Brand          string          `json:"brand"`
	Limit          decimal.Decimal `json:"limit"`
	ClosingDay     int             `json:"closing_day"`
	DueDay         int             `json:"due_day"`
	Color          string          `json:"color"`
}

// CreateCard registers a new card for the user
func (s *Service) CreateCard(userID int64, in CardInput) (*models.Card, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.ClosingDay < 1 || in.ClosingDay > 31 {
		return nil, fmt.Errorf("%w: closing day must be between 1 and 31", ErrValidation)
	}
	if in.DueDay < 1 || in.DueDay > 31 {
		return nil, fmt.Errorf("%w: due day must be between 1 and 31", ErrValidation)
	}
	if len(in.LastFourDigits) > 4 {
		return nil, fmt.Errorf("%w: last four digits must have at most 4 characters", ErrValidation)
	}

	card := &models.Card{
		UserID:         userID,
		Name:           in.Name,
		LastFourDigits: in.LastFourDigits,
		Brand:          in.Brand,
		Limit:          in.Limit,
		ClosingDay:     in.ClosingDay,
		DueDay:         in.DueDay,
		Color:          in.Color,
	}

	if err := s.store.CreateCard(card); err != nil {
		return nil, err
	}

	s.log.Infof("Card created for user %d: %s", userID, card.Name)
	return card, nil
}

// Cards lists the user's cards
func (s *Service) Cards(userID int64) ([]models.Card, error) {
	return s.store.FindCardsByUser(userID)
}
