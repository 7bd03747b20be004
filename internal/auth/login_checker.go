package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// IsLogged returns the ID of the user owning the session token.
func (c *LoginChecker) IsLogged(ctx context.Context, token string) (string, bool, error) {
	val, err := c.redisClient.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}

	userID, createdAt, err := decodeSession(val)
	if err != nil {
		return "", false, err
	}

	if time.Since(createdAt) > c.ttl {
		return "", false, nil
	}

	return userID, true, nil
}
