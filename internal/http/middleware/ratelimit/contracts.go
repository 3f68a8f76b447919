package ratelimit

import (
	"net/http"
	"time"
)

// Limiter decides whether the caller identified by key may proceed.
// When it may not, retryAfter estimates when the next token is available.
type Limiter interface {
	Allow(key string) (ok bool, retryAfter time.Duration)
}

// KeyFunc derives the limiter key from a request.
type KeyFunc func(r *http.Request) string

// Clock provides current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NopLimiter lets every request through.
type NopLimiter struct{}

// Allow always returns true
func (NopLimiter) Allow(string) (bool, time.Duration) { return true, 0 }
