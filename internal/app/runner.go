package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"krishak-delivery/internal/http/debugserver"
	"krishak-delivery/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// MustRun starts the HTTP server using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(serve)
}

func serve(ctx context.Context, server *http.Server, debug *debugserver.Server, pool *pgxpool.Pool, logger logx.Logger) error {
	if pool != nil {
		defer pool.Close()
		if err := migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	debug.Start()
	defer stopDebug(debug, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("service-delivery listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down service-delivery")
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
	}

	gracefulShutdown(server, logger, shutdownTimeout)
	return nil
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Err(err))
		if err := srv.Close(); err != nil {
			logger.Error("server close error", logx.Err(err))
		}
	}
}

func stopDebug(debug *debugserver.Server, logger logx.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := debug.Shutdown(ctx); err != nil {
		logger.Warn("debug server shutdown error", logx.Err(err))
	}
}
