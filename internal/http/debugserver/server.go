package debugserver

import (
	"context"
	"crypto/subtle"
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/go-chi/chi/v5"

	"krishak-delivery/internal/logx"
)

// Config stores the debug listener settings. Empty Addr disables the listener.
type Config struct {
	Addr string
	User string
	Pass string
}

// Server exposes pprof and Prometheus metrics on a separate listener.
type Server struct {
	srv    *http.Server
	logger logx.Logger
}

// New returns nil when cfg.Addr is empty.
func New(cfg Config, metrics http.Handler, logger logx.Logger) *Server {
	if cfg.Addr == "" {
		return nil
	}
	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           Handler(cfg, metrics),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger.With(logx.String("component", "debug_server")),
	}
}

// Handler returns the guarded debug routes.
func Handler(cfg Config, metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(guard(cfg))

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	r.Route("/debug/pprof", func(pr chi.Router) {
		pr.HandleFunc("/", pprof.Index)
		pr.HandleFunc("/cmdline", pprof.Cmdline)
		pr.HandleFunc("/profile", pprof.Profile)
		pr.HandleFunc("/symbol", pprof.Symbol)
		pr.HandleFunc("/trace", pprof.Trace)
		for _, name := range []string{"heap", "goroutine", "allocs", "block", "mutex", "threadcreate"} {
			pr.Handle("/"+name, pprof.Handler(name))
		}
	})
	return r
}

// Start serves in the background. Listen errors are logged.
func (s *Server) Start() {
	if s == nil {
		return
	}
	go func() {
		s.logger.Info("debug server listening", logx.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("debug server failed", logx.Err(err))
		}
	}()
}

// Shutdown stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// guard lets loopback callers through and requires basic auth from everyone else.
func guard(cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if fromLoopback(r.RemoteAddr) || authorized(r, cfg) {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("WWW-Authenticate", `Basic realm="debug"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})
	}
}

func authorized(r *http.Request, cfg Config) bool {
	if cfg.User == "" || cfg.Pass == "" {
		return false
	}
	u, p, ok := r.BasicAuth()
	return ok && equal(u, cfg.User) && equal(p, cfg.Pass)
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func fromLoopback(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
