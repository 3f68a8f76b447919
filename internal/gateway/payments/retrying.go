package payments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"krishak-delivery/internal/logx"
)

type notifier interface {
	OnDeliveryConfirmed(ctx context.Context, orderID string, assignmentID uuid.UUID, transportFee int64) error
	OnDeliveryCancelled(ctx context.Context, orderID string, assignmentID uuid.UUID, reason string) error
}

type counter interface {
	Inc()
}

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// RetryConfig describes the RetryingNotifier backoff.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingNotifier retries transient notification failures with exponential backoff.
type RetryingNotifier struct {
	next    notifier
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingNotifier returns nil when next is nil.
func NewRetryingNotifier(next notifier, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingNotifier {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryingNotifier{next: next, logger: logger, retries: retries, cfg: cfg}
}

// OnDeliveryConfirmed forwards to the wrapped notifier with retries.
func (n *RetryingNotifier) OnDeliveryConfirmed(ctx context.Context, orderID string, assignmentID uuid.UUID, transportFee int64) error {
	return n.do(ctx, "OnDeliveryConfirmed", orderID, func() error {
		return n.next.OnDeliveryConfirmed(ctx, orderID, assignmentID, transportFee)
	})
}

// OnDeliveryCancelled forwards to the wrapped notifier with retries.
func (n *RetryingNotifier) OnDeliveryCancelled(ctx context.Context, orderID string, assignmentID uuid.UUID, reason string) error {
	return n.do(ctx, "OnDeliveryCancelled", orderID, func() error {
		return n.next.OnDeliveryCancelled(ctx, orderID, assignmentID, reason)
	})
}

func (n *RetryingNotifier) do(ctx context.Context, method, orderID string, call func() error) error {
	var lastErr error
	for attempt := 1; attempt <= n.cfg.MaxAttempts; attempt++ {
		err := call()
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == n.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(n.cfg.BaseDelay, n.cfg.MaxDelay, attempt)
		if n.retries != nil {
			n.retries.Inc()
		}
		n.logger.Warn("payment notify retry",
			logx.String("method", method),
			logx.String("order_id", orderID),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

func isRetryable(err error) bool {
	if IsPermanent(err) {
		return false
	}
	return !errors.Is(err, context.Canceled)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
