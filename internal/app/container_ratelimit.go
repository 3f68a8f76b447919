package app

import (
	"krishak-delivery/internal/config"
	"krishak-delivery/internal/http/middleware/ratelimit"
	"krishak-delivery/internal/logx"
)

func newRateLimiter(cfg *config.Config) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucket(nil, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitMiddleware(logger logx.Logger, m *appMetrics, limiter ratelimit.Limiter) *ratelimit.Middleware {
	return ratelimit.New(logger, m.rateLimitExceeded, limiter, ratelimit.PrincipalKey)
}
