package middleware

import (
	"errors"
	"io"
	"net/http"

	"krishak-delivery/internal/auth"
	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/logx"
)

type tokenParser interface {
	FromHeader(header string) (domain.Actor, error)
}

// Authenticate resolves the bearer token into an actor stored in the request context.
// Requests without a valid token get 401.
func Authenticate(parser tokenParser, logger logx.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := parser.FromHeader(r.Header.Get("Authorization"))
			if err != nil {
				msg := `{"error":"invalid token"}`
				if errors.Is(err, auth.ErrMissingToken) {
					msg = `{"error":"missing bearer token"}`
				}
				logger.Info("request not authenticated",
					logx.String("method", r.Method),
					logx.String("path", r.URL.Path),
					logx.Err(err),
				)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("WWW-Authenticate", `Bearer realm="krishak"`)
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, msg)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		})
	}
}
