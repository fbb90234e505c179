// Package auth implements the operator login gate: a bcrypt credential check
// that, on success, mints a signed session token the menu loop validates
// before dispatching operations.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/NayanikaSethi/workshop/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Service handles authentication operations.
type Service struct {
	adminUser    string
	passwordHash string
	secret       []byte
	tokenExp     time.Duration
}

// NewService builds the gate from config. When no precomputed hash is
// configured the plaintext default is hashed once here, so comparisons always
// go through bcrypt.
func NewService(cfg *config.Config) (*Service, error) {
	hash := cfg.AdminPasswordHash
	if hash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		hash = string(h)
	}
	return &Service{
		adminUser:    cfg.AdminUser,
		passwordHash: hash,
		secret:       []byte(cfg.SessionSecret),
		tokenExp:     12 * time.Hour,
	}, nil
}

// Login checks the credentials and returns a session token on success.
func (s *Service) Login(username, password string) (string, error) {
	if username != s.adminUser {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(username)
}

func (s *Service) generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(s.tokenExp).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateSession verifies a session token minted by Login.
func (s *Service) ValidateSession(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
