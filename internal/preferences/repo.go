package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/mesocycles/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const logoKeyPrefix = "meso-pref-logo||"

type Repo struct {
	redisClient *redis.Client
}

func NewRepo(redisClient *redis.Client) *Repo {
	return &Repo{
		redisClient: redisClient,
	}
}

// GetLogo returns the stored logo key, or an empty string if not set.
func (r *Repo) GetLogo(ctx context.Context, userID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.preferences.get_logo")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key, err := r.redisClient.Get(ctx, logoKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("get logo preference: %w", err)
	}

	return key, nil
}

func (r *Repo) SetLogo(ctx context.Context, userID, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.preferences.set_logo")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.redisClient.Set(ctx, logoKeyPrefix+userID, key, 0).Err(); err != nil {
		return fmt.Errorf("set logo preference: %w", err)
	}

	return nil
}
