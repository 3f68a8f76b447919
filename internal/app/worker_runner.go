package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"krishak-delivery/internal/http/debugserver"
	"krishak-delivery/internal/logx"
	"krishak-delivery/internal/service/payout"
	"krishak-delivery/internal/transport/kafka"
)

// WorkerRunner runs the job consumer and the payment outbox relay.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun runs the worker until its context is cancelled.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

type workerDeps struct {
	dig.In

	Ctx             context.Context
	Pool            *pgxpool.Pool
	Logger          logx.Logger
	Consumer        *kafka.Consumer
	RelayJob        *payout.RelayJob
	Debug           *debugserver.Server
	PublisherCloser publisherCloser
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(d workerDeps) error {
	if d.RelayJob == nil {
		return fmt.Errorf("relay job is nil: worker container misconfigured")
	}
	defer closeWorker(d)

	if d.Pool != nil {
		if err := migrate(d.Ctx, d.Pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	d.Debug.Start()
	if err := d.RelayJob.Start(); err != nil {
		return fmt.Errorf("start relay: %w", err)
	}

	d.Logger.Info("service-delivery-worker started", logx.Bool("consumer", d.Consumer != nil))
	if d.Consumer == nil {
		<-d.Ctx.Done()
		return nil
	}
	return d.Consumer.Run(d.Ctx)
}

func closeWorker(d workerDeps) {
	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	d.RelayJob.Stop(stopCtx)
	stopDebug(d.Debug, d.Logger)

	if err := d.Consumer.Close(); err != nil {
		d.Logger.Error("kafka close error", logx.Err(err))
	}
	if d.PublisherCloser != nil {
		if err := d.PublisherCloser(); err != nil {
			d.Logger.Error("payment publisher close error", logx.Err(err))
		}
	}
	if d.Pool != nil {
		d.Pool.Close()
	}
}
