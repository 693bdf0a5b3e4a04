package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"estoque-api/internal/auth"
	"estoque-api/internal/config"
	"estoque-api/internal/db"
	api "estoque-api/internal/http"
	"estoque-api/internal/http/handlers"
	rl "estoque-api/internal/http/rate_limiter"
	"estoque-api/internal/repo"
)

// @title Estoque API
// @version 1.0
// @description REST API for managing a per-user product inventory with stock metrics.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	logger := config.NewLogger(cfg.Log)

	go rl.StartVisitorCleanupLoop()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal().Err(err).Msg("could not connect to Redis")
	}
	defer rdb.Close()

	database, err := db.Connect(cfg.DB.URL)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not connect to database")
	}
	defer database.Close()

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetTokenManager(tokens)
	handlers.SetRefreshTokenStore(auth.NewRefreshTokenStore(rdb, cfg.JWT.RefreshExpiry))
	handlers.SetLogger(logger)

	r := api.NewRouter(tokens, logger)
	logger.Info().Str("port", cfg.App.Port).Msg("server running")
	if err := http.ListenAndServe(":"+cfg.App.Port, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
