package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/ecochat/internal/auth"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// sessiontool creates and revokes API session tokens, since there is
// no self-service signup surface on the server itself.
//
// Usage:
//
//	sessiontool -user serj
//	sessiontool -revoke <token>
func main() {
	userID := flag.String("user", "", "user id to create a session token for")
	revokeToken := flag.String("revoke", "", "session token to revoke")
	redisAddr := flag.String("redis-addr", "localhost:6379", "redis address")
	ttl := flag.Duration("ttl", auth.DefaultTTL, "session time to live")
	flag.Parse()

	if *userID == "" && *revokeToken == "" {
		fmt.Println("either -user or -revoke must be set")
		flag.Usage()
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     *redisAddr,
		Password: os.Getenv("ECOCHAT_REDIS_PASS"),
		DB:       0,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if statusCmd := redisClient.Ping(ctx); statusCmd.Err() != nil {
		log.Fatalf("ping redis: %s", statusCmd.Err())
	}

	authService := auth.NewService(*ttl, redisClient)

	if *revokeToken != "" {
		existed, err := authService.Logout(ctx, *revokeToken)
		if err != nil {
			if errors.Is(err, redis.Nil) {
				fmt.Println("session token not found")
				return
			}
			log.Fatalf("revoke session: %s", err)
		}
		if !existed {
			fmt.Println("session token not found")
			return
		}
		fmt.Println("session token revoked")
		return
	}

	token, err := authService.CreateSession(ctx, *userID)
	if err != nil {
		log.Fatalf("create session: %s", err)
	}

	fmt.Printf("session created for [%s], valid for %s\n", *userID, *ttl)
	fmt.Printf("token: %s\n", token)
}
