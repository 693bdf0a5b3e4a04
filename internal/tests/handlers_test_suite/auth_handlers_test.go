package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "estoque-api/internal/http/handlers"
	rl "estoque-api/internal/http/rate_limiter"
)

func TestRegisterHandler(t *testing.T) {
	rl.CleanupAllVisitors()

	w := doJSON(http.MethodPost, "/register", "", handler.CredentialsRequest{
		Username: "newuser", Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp handler.RegisterResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "user registered", resp.Message)
	assert.NotEmpty(t, resp.Token)
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	rl.CleanupAllVisitors()

	w := doJSON(http.MethodPost, "/register", "", handler.CredentialsRequest{
		Username: "admin", Password: "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterHandler_ShortCredentials(t *testing.T) {
	rl.CleanupAllVisitors()

	w := doJSON(http.MethodPost, "/register", "", handler.CredentialsRequest{
		Username: "ab", Password: "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginHandler(t *testing.T) {
	rl.CleanupAllVisitors()

	w := doJSON(http.MethodPost, "/login", "", handler.CredentialsRequest{
		Username: "admin", Password: "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.LoginResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	rl.CleanupAllVisitors()

	w := doJSON(http.MethodPost, "/login", "", handler.CredentialsRequest{
		Username: "admin", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	rl.CleanupAllVisitors()

	w := doJSON(http.MethodPost, "/login", "", handler.CredentialsRequest{
		Username: "nobody", Password: "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthEndpoints_RateLimited(t *testing.T) {
	rl.CleanupAllVisitors()
	t.Cleanup(rl.CleanupAllVisitors)

	creds := handler.CredentialsRequest{Username: "admin", Password: "wrong"}
	limited := false
	for i := 0; i < 10; i++ {
		w := doJSON(http.MethodPost, "/login", "", creds)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	assert.True(t, limited, "expected the limiter to kick in within 10 rapid attempts")
}

func TestProductsRoute_RejectsBadToken(t *testing.T) {
	w := doJSON(http.MethodGet, "/products", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
