package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/qrobotics/storefront-api/internal/cache"
)

// LoginRateLimiter throttles failed admin login attempts per client IP using
// a Redis counter. Limit: 5 failures per minute. Redis being unavailable
// fails open so an outage cannot lock admins out.
type LoginRateLimiter struct {
	redis *cache.RedisClient
}

// NewLoginRateLimiter constructs a LoginRateLimiter.
func NewLoginRateLimiter(redis *cache.RedisClient) *LoginRateLimiter {
	return &LoginRateLimiter{redis: redis}
}

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = time.Minute
)

func (r *LoginRateLimiter) key(ip string) string {
	return fmt.Sprintf("login:failures:%s", ip)
}

// Allow reports whether ip may make another login attempt.
func (r *LoginRateLimiter) Allow(ctx context.Context, ip string) bool {
	n, err := r.redis.GetInt(ctx, r.key(ip))
	if err != nil {
		log.Warn().Err(err).Msg("login rate limiter unavailable")
		return true
	}
	return n < loginAttemptLimit
}

// RecordFailure counts a failed attempt against ip.
func (r *LoginRateLimiter) RecordFailure(ctx context.Context, ip string) {
	if _, err := r.redis.Incr(ctx, r.key(ip), loginAttemptWindow); err != nil {
		log.Warn().Err(err).Msg("failed to record login failure")
	}
}

// Reset clears the failure counter for ip after a successful login.
func (r *LoginRateLimiter) Reset(ctx context.Context, ip string) {
	if err := r.redis.Delete(ctx, r.key(ip)); err != nil {
		log.Warn().Err(err).Msg("failed to reset login failures")
	}
}
