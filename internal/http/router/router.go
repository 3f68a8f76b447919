package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"krishak-delivery/internal/http/handlers"
)

const requestTimeout = 10 * time.Second

// Deps groups what the router mounts. Nil middlewares and handlers are skipped.
type Deps struct {
	Base          *handlers.Handlers
	Assignments   *handlers.AssignmentHandler
	Observability func(http.Handler) http.Handler
	Authenticate  func(http.Handler) http.Handler
	RateLimit     func(http.Handler) http.Handler
	Metrics       http.Handler
	// Photos serves stored evidence under PhotosPrefix.
	Photos       http.Handler
	PhotosPrefix string
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if d.Observability != nil {
		r.Use(d.Observability)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}
	if d.Photos != nil && d.PhotosPrefix != "" {
		r.Method(http.MethodGet, d.PhotosPrefix+"/*", http.StripPrefix(d.PhotosPrefix, d.Photos))
	}

	r.Route("/api/v1", func(api chi.Router) {
		if d.Authenticate != nil {
			api.Use(d.Authenticate)
		}
		if d.RateLimit != nil {
			api.Use(d.RateLimit)
		}

		a := d.Assignments
		api.Route("/assignments", func(ar chi.Router) {
			ar.Post("/", a.Create)
			ar.Get("/", a.List)
			ar.Post("/quote", a.Quote)
			ar.Route("/{id}", func(one chi.Router) {
				one.Get("/", a.Get)
				one.Get("/history", a.History)
				one.Patch("/status", a.UpdateStatus)
				one.Post("/cancel", a.Cancel)
				one.Post("/photos", a.UploadPhoto)
			})
		})
	})

	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	return r
}
