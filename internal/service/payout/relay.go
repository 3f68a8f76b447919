package payout

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/logx"
)

// RelayConfig bounds one relay pass.
type RelayConfig struct {
	BatchSize   int
	MaxAttempts int
	Timeout     time.Duration
}

// Relay forwards committed payment outbox rows to the payment collaborator.
type Relay struct {
	store    outboxStore
	notifier Notifier
	cfg      RelayConfig
	relayed  *prometheus.CounterVec
	logger   logx.Logger
}

// NewRelay - creates a new Relay.
func NewRelay(store outboxStore, notifier Notifier, cfg RelayConfig, relayed *prometheus.CounterVec, logger logx.Logger) *Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 20
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Relay{store: store, notifier: notifier, cfg: cfg, relayed: relayed, logger: logger}
}

// RunOnce relays one batch of pending rows and reports how many were sent and how many failed.
// Rows settled before an error are still counted.
func (r *Relay) RunOnce(ctx context.Context) (sent, failed int, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	sent, failed, err = r.store.ProcessPending(ctx, r.cfg.BatchSize, r.cfg.MaxAttempts, r.dispatch)
	r.count("sent", sent)
	r.count("failed", failed)
	if err != nil {
		return sent, failed, fmt.Errorf("relay payment outbox: %w", err)
	}

	if sent > 0 || failed > 0 {
		r.logger.Info("payment outbox relayed",
			logx.String("event", "payment_outbox_relayed"),
			logx.Int("sent", sent),
			logx.Int("failed", failed),
		)
	}
	return sent, failed, nil
}

func (r *Relay) dispatch(ctx context.Context, e domain.PaymentEvent) error {
	var err error
	switch e.Kind {
	case domain.PaymentDeliveryConfirmed:
		err = r.notifier.OnDeliveryConfirmed(ctx, e.OrderID, e.AssignmentID, e.TransportFee)
	case domain.PaymentDeliveryCancelled:
		err = r.notifier.OnDeliveryCancelled(ctx, e.OrderID, e.AssignmentID, e.Reason)
	default:
		err = fmt.Errorf("unknown payment event kind %q", e.Kind)
	}
	if err != nil {
		r.logger.Warn("payment notification failed",
			logx.String("event", "payment_notify_failed"),
			logx.Int64("outbox_id", e.ID),
			logx.String("order_id", e.OrderID),
			logx.String("kind", string(e.Kind)),
			logx.Int("attempt", e.Attempts+1),
			logx.Err(err),
		)
	}
	return err
}

func (r *Relay) count(result string, n int) {
	if r.relayed == nil || n == 0 {
		return
	}
	r.relayed.WithLabelValues(result).Add(float64(n))
}
