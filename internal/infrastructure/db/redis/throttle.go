package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	failurePrefix = "login_fail:"
	failureWindow = 15 * time.Minute
	maxFailures   = 10
)

// LoginThrottle counts failed login attempts per identity in Redis and
// blocks further attempts once the threshold is reached within the
// window. It fails open: any Redis error allows the attempt, so an
// unavailable cache never locks users out.
type LoginThrottle struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewLoginThrottle(client *redis.Client, logger zerolog.Logger) *LoginThrottle {
	return &LoginThrottle{client: client, logger: logger}
}

func (t *LoginThrottle) Allow(ctx context.Context, identity string) bool {
	count, err := t.client.Get(ctx, failurePrefix+identity).Int64()
	if err != nil {
		if err != redis.Nil {
			t.logger.Warn().Err(err).Msg("login throttle read failed, allowing attempt")
		}
		return true
	}
	return count < maxFailures
}

func (t *LoginThrottle) RecordFailure(ctx context.Context, identity string) {
	key := failurePrefix + identity
	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		t.logger.Warn().Err(err).Msg("login throttle increment failed")
		return
	}
	// Start the window on the first failure; later failures extend nothing.
	if count == 1 {
		if err := t.client.Expire(ctx, key, failureWindow).Err(); err != nil {
			t.logger.Warn().Err(err).Msg("login throttle expire failed")
		}
	}
}

func (t *LoginThrottle) Reset(ctx context.Context, identity string) {
	if err := t.client.Del(ctx, failurePrefix+identity).Err(); err != nil {
		t.logger.Warn().Err(err).Msg("login throttle reset failed")
	}
}
