package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func allowed(l *TokenBucket, key string) bool {
	ok, _ := l.Allow(key)
	return ok
}

func TestTokenBucket_BurstThenBlocksThenRefills(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucket(clk, Config{Rate: 1, Burst: 2})

	require.True(t, allowed(l, "a"))
	require.True(t, allowed(l, "a"))

	ok, wait := l.Allow("a")
	require.False(t, ok)
	require.Equal(t, time.Second, wait)

	clk.Add(500 * time.Millisecond)
	ok, wait = l.Allow("a")
	require.False(t, ok)
	require.Equal(t, 500*time.Millisecond, wait)

	clk.Add(500 * time.Millisecond)
	require.True(t, allowed(l, "a"))
	require.False(t, allowed(l, "a"))

	clk.Add(10 * time.Second)
	require.True(t, allowed(l, "a"))
	require.True(t, allowed(l, "a"))
	require.False(t, allowed(l, "a"), "refill is capped by burst")
}

func TestTokenBucket_IsPerKey(t *testing.T) {
	t.Parallel()

	l := NewTokenBucket(newFakeClock(time.Unix(0, 0)), Config{Rate: 1, Burst: 1})

	require.True(t, allowed(l, "transporter:t-1"))
	require.False(t, allowed(l, "transporter:t-1"))
	require.True(t, allowed(l, "transporter:t-2"))
}

func TestTokenBucket_TTLCleanupRemovesIdleBuckets(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucket(clk, Config{Rate: 10, Burst: 1, TTL: 2 * time.Second})

	_ = allowed(l, "A")
	_ = allowed(l, "B")
	require.Equal(t, 2, l.Len())

	clk.Add(59 * time.Second)
	_ = allowed(l, "B")
	clk.Add(2 * time.Second)
	_ = allowed(l, "B")

	require.Equal(t, 1, l.Len())
	_, ok := l.buckets["B"]
	require.True(t, ok)
}

func TestTokenBucket_MaxBuckets(t *testing.T) {
	t.Parallel()

	l := NewTokenBucket(newFakeClock(time.Unix(0, 0)), Config{Rate: 1, Burst: 5, MaxBuckets: 1})

	require.True(t, allowed(l, "a"))
	require.False(t, allowed(l, "b"))
	require.True(t, allowed(l, "a"))
}

func TestTokenBucket_Defaults(t *testing.T) {
	t.Parallel()

	l := NewTokenBucket(nil, Config{Rate: -1, Burst: 0, MaxBuckets: -3})
	require.Equal(t, 1.0, l.cfg.Rate)
	require.Equal(t, 1, l.cfg.Burst)
	require.Equal(t, 0, l.cfg.MaxBuckets)
	require.True(t, allowed(l, "k"))
}
