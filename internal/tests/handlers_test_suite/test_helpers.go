package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	"estoque-api/internal/auth"
	api "estoque-api/internal/http"
	handler "estoque-api/internal/http/handlers"
	rl "estoque-api/internal/http/rate_limiter"
	"estoque-api/internal/models"
	"estoque-api/internal/repo"

	"github.com/rs/zerolog"
)

var (
	router      http.Handler
	token       string
	otherToken  string
	productRepo *repo.InMemoryProductRepository
)

func init() {
	tokens := auth.NewTokenManager("test-secret", 15*time.Minute)

	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)
	handler.SetTokenManager(tokens)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{Username: "admin", PasswordHash: string(hash)})
	userRepo.CreateUser(models.User{Username: "intruder", PasswordHash: string(hash)})

	router = api.NewRouter(tokens, zerolog.Nop())

	var err error
	if token, err = generateToken(router, "admin", "secret123"); err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
	if otherToken, err = generateToken(router, "intruder", "secret123"); err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func clearAllProducts() {
	productRepo.Clear()
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	rl.CleanupAllVisitors()
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(method, path, bearer string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createProduct(bearer string, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(http.MethodPost, "/products", bearer, p)
}
