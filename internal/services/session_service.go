package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// SessionService issues and validates session tokens. There is no credential
// store: opening a session always succeeds, it only binds a fresh session id
// to the customer's name so the cart has an owner.
type SessionService struct {
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which the session token is valid
}

// NewSessionService creates a new SessionService.
func NewSessionService(jwtSecret string) *SessionService {
	return &SessionService{
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Open starts a new session and returns its signed token.
func (s *SessionService) Open(customerName string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id":    uuid.New().String(),
		"customer_name": customerName,
		"exp":           time.Now().Add(s.tokenDurat).Unix(),
		"iat":           time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a session token, returning the claims
// if valid.
func (s *SessionService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Session token validation error: %v", err)
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid session token")
}
