package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estoque-api/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", 15*time.Minute)

	token, err := m.GenerateToken(models.User{ID: 42, Username: "admin"})
	require.NoError(t, err)

	session, err := m.SessionFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, session.UserID)
	assert.Equal(t, "admin", session.Username)
	assert.True(t, session.Valid())
}

func TestSessionFromToken_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", 15*time.Minute)

	_, err := m.SessionFromToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionFromToken_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 15*time.Minute)
	verifier := NewTokenManager("secret-b", 15*time.Minute)

	token, err := issuer.GenerateToken(models.User{ID: 1, Username: "admin"})
	require.NoError(t, err)

	_, err = verifier.SessionFromToken(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionFromToken_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.GenerateToken(models.User{ID: 1, Username: "admin"})
	require.NoError(t, err)

	_, err = m.SessionFromToken(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestEmptySessionIsInvalid(t *testing.T) {
	assert.False(t, Session{}.Valid())
}
