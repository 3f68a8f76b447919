package payout

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"krishak-delivery/internal/logx"
)

// RelayJob runs the Relay on a cron schedule. Overlapping runs are skipped.
type RelayJob struct {
	relay    *Relay
	schedule string
	cron     *cron.Cron
	logger   logx.Logger
}

// NewRelayJob creates a job for relay; schedule accepts standard cron specs and descriptors like "@every 5s".
func NewRelayJob(relay *Relay, schedule string, logger logx.Logger) *RelayJob {
	return &RelayJob{
		relay:    relay,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With(logx.String("component", "payment_outbox_job")),
	}
}

// Start schedules the relay and starts the scheduler.
func (j *RelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, _, err := j.relay.RunOnce(context.Background()); err != nil {
			j.logger.Error("payment outbox relay failed", logx.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule payment outbox relay %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("payment outbox job started", logx.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running relay to finish or ctx to end.
func (j *RelayJob) Stop(ctx context.Context) {
	done := j.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	j.logger.Info("payment outbox job stopped")
}
