package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Config stores TokenBucket settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than TTL are dropped, 0 keeps them
	MaxBuckets int           // 0 means unbounded
}

// TokenBucket is a per-key token bucket limiter.
type TokenBucket struct {
	cfg   Config
	clock Clock

	mu          sync.Mutex
	buckets     map[string]*bucket
	lastCleanup time.Time
}

type bucket struct {
	tokens   float64
	last     time.Time
	lastSeen time.Time
}

// NewTokenBucket creates a limiter; a nil clock means wall time.
func NewTokenBucket(clock Clock, cfg Config) *TokenBucket {
	if clock == nil {
		clock = realClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucket{cfg: cfg, clock: clock, buckets: make(map[string]*bucket)}
}

// Allow takes a token from key's bucket.
// A new key is refused when MaxBuckets buckets are already tracked.
func (l *TokenBucket) Allow(key string) (bool, time.Duration) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.cleanup(now)

	b, ok := l.buckets[key]
	if !ok {
		if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
			return false, time.Second
		}
		b = &bucket{tokens: float64(l.cfg.Burst), last: now}
		l.buckets[key] = b
	}

	if dt := now.Sub(b.last); dt > 0 {
		b.tokens = math.Min(float64(l.cfg.Burst), b.tokens+dt.Seconds()*l.cfg.Rate)
		b.last = now
	}
	b.lastSeen = now

	if b.tokens < 1 {
		wait := time.Duration((1 - b.tokens) / l.cfg.Rate * float64(time.Second))
		return false, wait
	}
	b.tokens--
	return true, 0
}

// Len returns the number of tracked buckets.
func (l *TokenBucket) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *TokenBucket) cleanup(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	interval := max(l.cfg.TTL/2, time.Minute)
	if !l.lastCleanup.IsZero() && now.Sub(l.lastCleanup) < interval {
		return
	}
	l.lastCleanup = now
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
