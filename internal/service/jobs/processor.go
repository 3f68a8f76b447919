package jobs

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"krishak-delivery/internal/apperr"
	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/logx"
	"krishak-delivery/internal/service/assignment"
)

const defaultCancelReason = "order cancelled"

// Processor turns upstream events into assignment operations. Business
// rejections are logged and swallowed; only infrastructure errors are returned
// so the caller can redeliver.
type Processor struct {
	assignments AssignmentPort
	factory     *actionFactory
	events      *prometheus.CounterVec
	logger      logx.Logger
}

// NewProcessor creates a new jobs.Processor
func NewProcessor(assignments AssignmentPort, events *prometheus.CounterVec, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{assignments: assignments, events: events, logger: logger}
	p.factory = newActionFactory(p.onAccepted, p.onCancelled)
	return p
}

// Handle processes a single Event
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Name)
	if !ok {
		p.logger.Debug("job event ignored", logx.String("name", e.Name), logx.String("order_id", e.OrderID))
		p.observe("unknown", "ignored")
		return nil
	}
	if err := fn(ctx, e); err != nil {
		p.observe(e.Name, "error")
		return err
	}
	return nil
}

func (p *Processor) onAccepted(ctx context.Context, e Event) error {
	a, err := p.assignments.Create(ctx, domain.SystemActor(), assignment.CreateInput{
		OrderID:             e.OrderID,
		TransporterID:       e.TransporterID,
		PickupLocation:      e.Pickup,
		DeliveryLocation:    e.Delivery,
		TransportFee:        e.TransportFee,
		EstimatedDistanceKm: e.EstimatedDistanceKm,
		Notes:               e.Notes,
	})
	switch {
	case err == nil:
		p.observe(e.Name, "ok")
		p.logger.Info("job accepted",
			logx.String("event", "job_accepted"),
			logx.String("order_id", e.OrderID),
			logx.Stringer("assignment_id", a.ID),
		)
		return nil
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrInvalid):
		p.observe(e.Name, "skipped")
		p.logger.Warn("job event skipped",
			logx.String("event", "job_skipped"),
			logx.String("name", e.Name),
			logx.String("order_id", e.OrderID),
			logx.Err(err),
		)
		return nil
	default:
		return err
	}
}

func (p *Processor) onCancelled(ctx context.Context, e Event) error {
	reason := e.Reason
	if reason == "" {
		reason = defaultCancelReason
	}

	a, ok, err := p.assignments.CancelActiveForOrder(ctx, e.OrderID, reason)
	switch {
	case err == nil && !ok:
		p.observe(e.Name, "skipped")
		p.logger.Info("no active assignment for cancelled order", logx.String("order_id", e.OrderID))
		return nil
	case err == nil:
		p.observe(e.Name, "ok")
		p.logger.Info("assignment cancelled for order",
			logx.String("event", "order_cancelled"),
			logx.String("order_id", e.OrderID),
			logx.Stringer("assignment_id", a.ID),
		)
		return nil
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, apperr.ErrInvalid):
		p.observe(e.Name, "skipped")
		p.logger.Warn("job event skipped",
			logx.String("event", "job_skipped"),
			logx.String("name", e.Name),
			logx.String("order_id", e.OrderID),
			logx.Err(err),
		)
		return nil
	default:
		return err
	}
}

func (p *Processor) observe(name, result string) {
	if p.events == nil {
		return
	}
	p.events.WithLabelValues(name, result).Inc()
}
