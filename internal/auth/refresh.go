package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrRefreshTokenInvalid is returned when a refresh token is unknown,
// expired, or already redeemed.
var ErrRefreshTokenInvalid = errors.New("invalid refresh token")

// RefreshTokenStore keeps opaque refresh tokens in Redis with a TTL.
// Tokens are single-use: redeeming one deletes it, so a leaked token
// cannot be replayed after rotation.
type RefreshTokenStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRefreshTokenStore(rdb *redis.Client, ttl time.Duration) *RefreshTokenStore {
	return &RefreshTokenStore{rdb: rdb, ttl: ttl}
}

// Issue creates a new refresh token for the user.
func (s *RefreshTokenStore) Issue(ctx context.Context, userID int) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, refreshKey(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("storing refresh token: %w", err)
	}
	return token, nil
}

// Redeem consumes a refresh token and returns the user id it was issued to.
func (s *RefreshTokenStore) Redeem(ctx context.Context, token string) (int, error) {
	userID, err := s.rdb.GetDel(ctx, refreshKey(token)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, ErrRefreshTokenInvalid
	}
	if err != nil {
		return 0, fmt.Errorf("redeeming refresh token: %w", err)
	}
	return userID, nil
}

func refreshKey(token string) string {
	return "refresh_token:" + token
}
