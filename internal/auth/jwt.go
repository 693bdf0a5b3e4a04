package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"estoque-api/internal/models"
)

// TokenManager issues and verifies the JWT access tokens used to scope
// every store operation to an owner.
type TokenManager struct {
	secret       []byte
	accessExpiry time.Duration
}

func NewTokenManager(secret string, accessExpiry time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), accessExpiry: accessExpiry}
}

// GenerateToken signs a short-lived access token for the user.
func (m *TokenManager) GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(m.accessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// SessionFromToken verifies a signed token and extracts the session it
// carries. Returns ErrUnauthenticated for any invalid or expired token.
func (m *TokenManager) SessionFromToken(tokenStr string) (Session, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrUnauthenticated
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return Session{}, ErrUnauthenticated
	}
	username, _ := claims["username"].(string)

	return Session{UserID: int(sub), Username: username}, nil
}
