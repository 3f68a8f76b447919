package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"krishak-delivery/internal/auth"
	"krishak-delivery/internal/config"
	"krishak-delivery/internal/http/handlers"
	"krishak-delivery/internal/http/middleware"
	"krishak-delivery/internal/http/middleware/ratelimit"
	"krishak-delivery/internal/http/router"
	"krishak-delivery/internal/logx"
	"krishak-delivery/internal/repository"
	"krishak-delivery/internal/service/assignment"
	"krishak-delivery/internal/storage/photos"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP service container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerPayments(container); err != nil {
		return nil, fmt.Errorf("payments: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
		newAppMetrics,
		newDebugServer,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		return dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewAssignmentRepo,
		func(cfg *config.Config) assignment.FeeCalculator {
			return assignment.NewFeeCalculator(cfg.Fees.Base, cfg.Fees.PerKm)
		},
		func(
			repo *repository.AssignmentRepo,
			fees assignment.FeeCalculator,
			m *appMetrics,
			cfg *config.Config,
			logger logx.Logger,
		) *assignment.Service {
			return assignment.NewService(repo, fees, m.transitions, cfg.Assignment.OperationTimeout, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	photoStoreProvider := func(cfg *config.Config, logger logx.Logger) *photos.FileStore {
		return photos.NewFileStore(cfg.Photos.Dir, cfg.Photos.BaseURL, cfg.Photos.MaxBytes, logger)
	}
	verifierProvider := func(cfg *config.Config) (*auth.Verifier, error) {
		return auth.NewVerifier(cfg.Auth.JWTSecret)
	}
	return provideAll(container,
		handlers.New,
		handlers.NewAssignmentUsecase,
		handlers.NewPhotoStore,
		handlers.NewAssignmentHandler,
		photoStoreProvider,
		verifierProvider,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
	)
}

type routerIn struct {
	dig.In

	Config      *config.Config
	Logger      logx.Logger
	Metrics     *appMetrics
	Base        *handlers.Handlers
	Assignments *handlers.AssignmentHandler
	Verifier    *auth.Verifier
	RateLimit   *ratelimit.Middleware
	Photos      *photos.FileStore
}

func newRouter(in routerIn) http.Handler {
	d := router.Deps{
		Base:          in.Base,
		Assignments:   in.Assignments,
		Observability: middleware.Observability(in.Logger, in.Metrics.httpRequests, in.Metrics.httpDuration),
		Authenticate:  middleware.Authenticate(in.Verifier, in.Logger),
		RateLimit:     in.RateLimit.Handler(),
		Metrics:       in.Metrics.handler(),
	}
	// photos are served locally only when the base URL is a path on this service
	if strings.HasPrefix(in.Config.Photos.BaseURL, "/") {
		d.Photos = http.FileServer(http.Dir(in.Photos.Dir()))
		d.PhotosPrefix = in.Config.Photos.BaseURL
	}
	return router.New(d)
}
