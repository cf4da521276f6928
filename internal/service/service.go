package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/pftrack/finance-service/internal/config"
	"github.com/pftrack/finance-service/internal/models"
)

// ErrValidation marks errors caused by invalid input
var ErrValidation = errors.New("validation failed")

// Service handles business logic
type Service struct {
	store  Store
	log    *logrus.Logger
	config *config.Config
	mail   Notifier
}

// NewService initializes a new service. mail may be nil when SMTP is not configured.
func NewService(store Store, log *logrus.Logger, cfg *config.Config, mail Notifier) *Service {
	return &Service{store: store, log: log, config: cfg, mail: mail}
}

// Register creates a new user with hashed password
func (s *Service) Register(name, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.store.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// UserByID returns the user's profile
func (s *Service) UserByID(userID int64) (*models.User, error) {
	return s.store.FindUserByID(userID)
}
