package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"krishak-delivery/internal/apperr"
	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/logx"
	"krishak-delivery/internal/ports/assignmenttx"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// CreateInput is the data the order flow supplies when a transporter accepts a job.
type CreateInput struct {
	OrderID             string
	TransporterID       string
	PickupLocation      domain.Location
	DeliveryLocation    domain.Location
	TransportFee        int64
	EstimatedDistanceKm *float64
	Notes               string
}

// TransitionInput is a status change requested by a caller.
type TransitionInput struct {
	// Expected is the status the caller last saw. Empty means the persisted status.
	Expected domain.AssignmentStatus
	Target   domain.AssignmentStatus
	Evidence string
	Reason   string
}

// Service - service managing transporter assignments and their delivery status.
type Service struct {
	repo             assignmentRepository
	fees             FeeCalculator
	transitions      *prometheus.CounterVec
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() uuid.UUID
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// NewService - creates a new assignment Service.
func NewService(
	r assignmentRepository,
	f FeeCalculator,
	transitions *prometheus.CounterVec,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		fees:             f,
		transitions:      transitions,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.New,
	}
}

// Create records a new assignment in the assigned status.
func (s *Service) Create(ctx context.Context, actor domain.Actor, in CreateInput) (domain.Assignment, error) {
	if !actor.Privileged() && !(actor.Role == domain.RoleTransporter && actor.ID == in.TransporterID) {
		return domain.Assignment{}, apperr.ErrForbidden
	}

	distance := in.EstimatedDistanceKm
	if distance == nil && in.PickupLocation.Coordinates != nil && in.DeliveryLocation.Coordinates != nil {
		km := distanceKm(in.PickupLocation, in.DeliveryLocation)
		distance = &km
	}

	now := s.now()
	a, err := domain.NewAssignment(s.newID(), domain.NewAssignmentParams{
		OrderID:             in.OrderID,
		TransporterID:       in.TransporterID,
		PickupLocation:      in.PickupLocation,
		DeliveryLocation:    in.DeliveryLocation,
		TransportFee:        in.TransportFee,
		EstimatedDistanceKm: distance,
		Notes:               in.Notes,
	}, now)
	if err != nil {
		return domain.Assignment{}, invalid(err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err = s.repo.WithTx(ctx, func(tx assignmenttx.Repository) error {
		if err := tx.InsertAssignment(ctx, a); err != nil {
			return err
		}
		return tx.AppendEvent(ctx, domain.AssignmentEvent{
			AssignmentID: a.ID,
			Status:       a.Status,
			Actor:        actor.String(),
			At:           now,
		})
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			s.logger.Warn("active assignment already exists",
				logx.String("event", "assignment_conflict"),
				logx.String("order_id", a.OrderID),
			)
		}
		return domain.Assignment{}, err
	}

	s.logger.Info("assignment created",
		logx.String("event", "assignment_created"),
		logx.Stringer("assignment_id", a.ID),
		logx.String("order_id", a.OrderID),
		logx.String("transporter_id", a.TransporterID),
		logx.Int64("transport_fee", a.TransportFee),
		logx.String("actor", actor.String()),
	)
	return a, nil
}

// Transition moves the assignment to in.Target if the actor may do so and the
// persisted status still equals in.Expected.
func (s *Service) Transition(ctx context.Context, actor domain.Actor, id uuid.UUID, in TransitionInput) (domain.Assignment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.Assignment
	err := s.repo.WithTx(ctx, func(tx assignmenttx.Repository) error {
		a, err := tx.GetAssignment(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.ErrNotFound
		}
		if !actor.Privileged() && !actor.Owns(*a) {
			return apperr.ErrForbidden
		}

		result, err = s.apply(ctx, tx, actor, *a, in)
		return err
	})
	if err != nil {
		return domain.Assignment{}, err
	}
	return result, nil
}

// Cancel moves the assignment to cancelled.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, id uuid.UUID, expected domain.AssignmentStatus, reason string) (domain.Assignment, error) {
	return s.Transition(ctx, actor, id, TransitionInput{
		Expected: expected,
		Target:   domain.StatusCancelled,
		Reason:   reason,
	})
}

// CancelActiveForOrder cancels the order's active assignment on behalf of the
// system. ok is false when the order has no active assignment.
func (s *Service) CancelActiveForOrder(ctx context.Context, orderID, reason string) (domain.Assignment, bool, error) {
	if orderID == "" {
		return domain.Assignment{}, false, invalid(&domain.ValidationError{Field: "order_id", Reason: "is required"})
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		result domain.Assignment
		found  bool
	)
	err := s.repo.WithTx(ctx, func(tx assignmenttx.Repository) error {
		a, err := tx.FindActiveByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if a == nil {
			return nil
		}
		found = true
		result, err = s.apply(ctx, tx, domain.SystemActor(), *a, TransitionInput{
			Expected: a.Status,
			Target:   domain.StatusCancelled,
			Reason:   reason,
		})
		return err
	})
	if err != nil {
		return domain.Assignment{}, false, err
	}
	return result, found, nil
}

// apply validates the transition and persists it with history and outbox rows.
func (s *Service) apply(
	ctx context.Context,
	tx assignmenttx.Repository,
	actor domain.Actor,
	a domain.Assignment,
	in TransitionInput,
) (domain.Assignment, error) {
	expected := in.Expected
	if expected == "" {
		expected = a.Status
	}

	next, err := a.Transition(domain.TransitionRequest{
		Expected: expected,
		Target:   in.Target,
		Evidence: in.Evidence,
		Reason:   in.Reason,
		At:       s.now(),
	})
	if err != nil {
		s.reject(actor, a, in.Target, err)
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return domain.Assignment{}, invalid(err)
		}
		return domain.Assignment{}, err
	}

	swapped, err := tx.CompareAndSwap(ctx, next, a.Status)
	if err != nil {
		s.observe(a.Status, in.Target, "error")
		return domain.Assignment{}, err
	}
	if !swapped {
		err := domain.StaleTransition(a.Status, in.Target)
		s.reject(actor, a, in.Target, err)
		return domain.Assignment{}, err
	}

	if err := tx.AppendEvent(ctx, domain.AssignmentEvent{
		AssignmentID: next.ID,
		Status:       next.Status,
		Actor:        actor.String(),
		At:           next.UpdatedAt,
	}); err != nil {
		return domain.Assignment{}, err
	}

	if ev, ok := domain.PaymentEventFor(next); ok {
		if err := tx.EnqueuePayment(ctx, ev); err != nil {
			return domain.Assignment{}, err
		}
	}

	s.observe(a.Status, next.Status, "ok")
	s.logger.Info("assignment status changed",
		logx.String("event", "assignment_transitioned"),
		logx.Stringer("assignment_id", next.ID),
		logx.String("order_id", next.OrderID),
		logx.String("from", string(a.Status)),
		logx.String("to", string(next.Status)),
		logx.String("actor", actor.String()),
	)
	return next, nil
}

func (s *Service) reject(actor domain.Actor, a domain.Assignment, target domain.AssignmentStatus, err error) {
	result := "invalid"
	if rej, ok := domain.AsRejection(err); ok {
		result = string(rej.Kind)
		if rej.Stale {
			result = "stale"
		}
	}
	s.observe(a.Status, target, result)
	s.logger.Info("assignment transition rejected",
		logx.String("event", "assignment_rejected"),
		logx.Stringer("assignment_id", a.ID),
		logx.String("from", string(a.Status)),
		logx.String("to", string(target)),
		logx.String("actor", actor.String()),
		logx.Err(err),
	)
}

func (s *Service) observe(from, to domain.AssignmentStatus, result string) {
	if s.transitions == nil {
		return
	}
	s.transitions.WithLabelValues(string(from), string(to), result).Inc()
}

// Get returns the assignment if the actor may see it.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (domain.Assignment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Assignment{}, err
	}
	if a == nil {
		return domain.Assignment{}, apperr.ErrNotFound
	}
	if !actor.Privileged() && !actor.Owns(*a) {
		return domain.Assignment{}, apperr.ErrForbidden
	}
	return *a, nil
}

// List returns assignments matching f. Transporters only ever see their own.
func (s *Service) List(ctx context.Context, actor domain.Actor, f domain.AssignmentFilter) ([]domain.Assignment, error) {
	switch {
	case actor.Role == domain.RoleTransporter:
		f.TransporterID = actor.ID
	case !actor.Privileged():
		return nil, apperr.ErrForbidden
	}
	if f.Status != nil && !f.Status.Valid() {
		return nil, invalid(&domain.ValidationError{Field: "status", Reason: "is not a known status"})
	}
	if f.Offset < 0 {
		return nil, invalid(&domain.ValidationError{Field: "offset", Reason: "must be >= 0"})
	}
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.List(ctx, f)
}

// History returns the status history of an assignment, oldest first.
func (s *Service) History(ctx context.Context, actor domain.Actor, id uuid.UUID) ([]domain.AssignmentEvent, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.ListHistory(ctx, id)
}

// Quote estimates the distance and fee between two locations.
func (s *Service) Quote(pickup, delivery domain.Location) (Quote, error) {
	q, err := s.fees.Quote(pickup, delivery)
	if err != nil {
		return Quote{}, invalid(err)
	}
	return q, nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", apperr.ErrInvalid, err)
}
