package auth

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

type SessionChecker struct {
	redisClient *redis.Client
}

func NewSessionChecker(redisClient *redis.Client) *SessionChecker {
	return &SessionChecker{
		redisClient: redisClient,
	}
}

func (sc *SessionChecker) UserIDForToken(ctx context.Context, token string) (string, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := sc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", err
	}

	userID := cmd.Val()
	if userID == "" {
		return "", ErrSessionNotFound
	}

	return userID, nil
}
