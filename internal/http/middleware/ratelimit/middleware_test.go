package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"krishak-delivery/internal/auth"
	"krishak-delivery/internal/domain"
	testlog "krishak-delivery/internal/testutil"
)

type stubLimiter struct {
	allow bool
	wait  time.Duration
	keys  []string
}

func (s *stubLimiter) Allow(key string) (bool, time.Duration) {
	s.keys = append(s.keys, key)
	return s.allow, s.wait
}

func TestMiddleware_Allows_RequestPassesToNext(t *testing.T) {
	t.Parallel()

	nextCalled := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled++
		w.WriteHeader(http.StatusOK)
	})

	lim := &stubLimiter{allow: true}
	h := New(nil, nil, lim, nil).Handler()(next)

	r := httptest.NewRequest(http.MethodGet, "http://example/test", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, nextCalled)
	require.Equal(t, []string{"ip:1.2.3.4"}, lim.keys)
}

func TestMiddleware_Blocks_Returns429AndIncrementsCounter(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "ratelimit_denied_total", Help: "denied requests"})
	rec := testlog.New()

	lim := &stubLimiter{allow: false, wait: 2300 * time.Millisecond}
	h := New(rec.Logger(), counter, lim, nil).Handler()(next)

	r := httptest.NewRequest(http.MethodGet, "http://example/test", nil)
	r = r.WithContext(auth.WithActor(r.Context(), domain.Actor{ID: "t-1", Role: domain.RoleTransporter}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Equal(t, "3", w.Header().Get("Retry-After"))
	require.Equal(t, `{"error":"too many requests"}`, w.Body.String())
	require.Equal(t, float64(1), testutil.ToFloat64(counter))

	e, ok := rec.Find("rate limit exceeded")
	require.True(t, ok)
	key, _ := e.Field("key")
	require.Equal(t, "transporter:t-1", key)
}

func TestMiddleware_RetryAfterIsAtLeastOneSecond(t *testing.T) {
	t.Parallel()

	h := New(nil, nil, &stubLimiter{}, func(*http.Request) string { return "k" }).
		Handler()(http.NotFoundHandler())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "not-a-hostport"
	require.Equal(t, "not-a-hostport", clientIP(r))

	r.RemoteAddr = ""
	require.Equal(t, "unknown", clientIP(r))
}
