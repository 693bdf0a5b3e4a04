package auth

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned when an operation that requires an active
// session is attempted without one.
var ErrUnauthenticated = errors.New("no active session")

// Session identifies the authenticated user behind a request. It is built
// once from the bearer token and passed explicitly to everything that needs
// the current owner, instead of being read from ambient globals.
type Session struct {
	UserID   int
	Username string
}

// Valid reports whether the session belongs to an authenticated user.
func (s Session) Valid() bool {
	return s.UserID > 0
}

type contextKey struct{}

// ContextWithSession attaches the session to the request context.
func ContextWithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// SessionFromContext extracts the session placed by the auth middleware.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}
