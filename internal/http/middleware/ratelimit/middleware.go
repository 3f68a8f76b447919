package ratelimit

import (
	"io"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"krishak-delivery/internal/auth"
	"krishak-delivery/internal/logx"
)

// Middleware rejects requests over the caller's budget with 429.
type Middleware struct {
	logger  logx.Logger
	counter prometheus.Counter
	limiter Limiter
	key     KeyFunc
}

// New creates a new Middleware. A nil key func limits by principal.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter, key KeyFunc) *Middleware {
	if logger == nil {
		logger = logx.Nop()
	}
	if limiter == nil {
		limiter = NopLimiter{}
	}
	if key == nil {
		key = PrincipalKey
	}
	return &Middleware{logger: logger, counter: counter, limiter: limiter, key: key}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := m.key(r)
			ok, retryAfter := m.limiter.Allow(key)
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			if m.counter != nil {
				m.counter.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("key", key),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)

			secs := int(math.Ceil(retryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				m.logger.Debug("rate limit response write failed", logx.String("key", key), logx.Err(err))
			}
		})
	}
}

// PrincipalKey keys authenticated requests by actor and the rest by client IP.
func PrincipalKey(r *http.Request) string {
	if a, ok := auth.ActorFromContext(r.Context()); ok {
		return a.String()
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
