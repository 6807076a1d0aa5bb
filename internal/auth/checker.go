package auth

import (
	"context"
	"errors"
)

var _ Checker = (*SessionChecker)(nil)

var ErrSessionNotFound = errors.New("session not found")

// Checker resolves an auth token into the ID of the user it belongs to.
type Checker interface {
	UserIDForToken(ctx context.Context, token string) (string, error)
}
