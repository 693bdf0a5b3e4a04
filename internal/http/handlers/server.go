package handlers

import (
	"sync"

	"github.com/rs/zerolog"

	"estoque-api/internal/auth"
	"estoque-api/internal/inventory"
	"estoque-api/internal/repo"
)

var (
	productRepo  repo.ProductRepository
	userRepo     repo.UserRepository
	tokens       *auth.TokenManager
	refreshStore *auth.RefreshTokenStore
	logger       = zerolog.Nop()

	controllersMu sync.Mutex
	controllers   = map[int]*inventory.ListController{}
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
	controllersMu.Lock()
	controllers = map[int]*inventory.ListController{}
	controllersMu.Unlock()
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetTokenManager(m *auth.TokenManager) {
	tokens = m
}

func SetRefreshTokenStore(s *auth.RefreshTokenStore) {
	refreshStore = s
}

func SetLogger(l zerolog.Logger) {
	logger = l
}

// listControllerFor returns the session's list controller, creating it on
// first use. One controller per owner keeps the in-memory collection
// session-scoped; no state crosses session boundaries.
func listControllerFor(session auth.Session) *inventory.ListController {
	controllersMu.Lock()
	defer controllersMu.Unlock()

	if c, ok := controllers[session.UserID]; ok {
		return c
	}
	c := inventory.NewListController(productRepo, session)
	controllers[session.UserID] = c
	return c
}
