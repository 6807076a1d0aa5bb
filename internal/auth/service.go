package auth

import (
	"context"
	"time"

	"github.com/2beens/ecochat/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "ecochat-session||"
	tokensSetKey     = "ecochat-sessions"
)

type LoginSession struct {
	Token  string
	UserID string
}

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// CreateSession issues a new token for the given user and stores the
// token -> user mapping with the configured TTL.
func (as *Service) CreateSession(ctx context.Context, userID string) (string, error) {
	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, userID, as.ttl)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return false, err
	}
	existed := cmd.Val() != ""

	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return existed, nil
}

// ScanAndClean will run through all known session tokens and drop the ones
// whose keys already expired, so the set does not grow forever.
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Warnln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Warnf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var removed int
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		existsCmd := as.redisClient.Exists(ctx, sessionKey)
		if err := existsCmd.Err(); err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}
		if existsCmd.Val() > 0 {
			continue
		}

		cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
		if err := cmdSRem.Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
		removed++
	}

	log.Warnf("=> auth service, scan and clean done, removed %d stale tokens", removed)
}
