package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"krishak-delivery/internal/apperr"
	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/ports/assignmenttx"
)

const assignmentColumns = `
    id, order_id, transporter_id, status,
    pickup_location, delivery_location, pickup_photo, delivery_photo,
    assigned_at, picked_at, in_transit_at, delivered_at, cancelled_at,
    estimated_distance_km, transport_fee, notes, cancel_reason,
    created_at, updated_at`

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AssignmentRepo represents transporter assignment repository.
type AssignmentRepo struct {
	db *pgxpool.Pool
}

// NewAssignmentRepo creates a new AssignmentRepo.
func NewAssignmentRepo(db *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *AssignmentRepo) WithTx(ctx context.Context, fn func(tx assignmenttx.Repository) error) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&TxRepo{tx: tx})
	})
}

func withTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Get - returns assignment by its ID, nil if absent.
func (r *AssignmentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	return getAssignment(ctx, r.db, id)
}

// List returns assignments matching f, newest first.
func (r *AssignmentRepo) List(ctx context.Context, f domain.AssignmentFilter) ([]domain.Assignment, error) {
	q := `SELECT ` + assignmentColumns + ` FROM transporter_assignments WHERE true`
	args := make([]any, 0, 5)
	if f.TransporterID != "" {
		args = append(args, f.TransporterID)
		q += fmt.Sprintf(" AND transporter_id = $%d", len(args))
	}
	if f.OrderID != "" {
		args = append(args, f.OrderID)
		q += fmt.Sprintf(" AND order_id = $%d", len(args))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	q += " ORDER BY created_at DESC, id"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Assignment, 0, f.Limit)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListHistory returns the status history of an assignment, oldest first.
func (r *AssignmentRepo) ListHistory(ctx context.Context, id uuid.UUID) ([]domain.AssignmentEvent, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, assignment_id, status, actor, at
        FROM assignment_events
        WHERE assignment_id = $1
        ORDER BY id
    `, id)
	if err != nil {
		return nil, fmt.Errorf("list history %s: %w", id, err)
	}
	defer rows.Close()

	var out []domain.AssignmentEvent
	for rows.Next() {
		var e domain.AssignmentEvent
		if err := rows.Scan(&e.ID, &e.AssignmentID, &e.Status, &e.Actor, &e.At); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetAssignment - get assignment by ID inside the transaction.
func (r *TxRepo) GetAssignment(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	return getAssignment(ctx, r.tx, id)
}

// FindActiveByOrder - get the order's assignment that is not cancelled.
func (r *TxRepo) FindActiveByOrder(ctx context.Context, orderID string) (*domain.Assignment, error) {
	row := r.tx.QueryRow(ctx, `SELECT `+assignmentColumns+`
        FROM transporter_assignments
        WHERE order_id = $1 AND status <> 'cancelled'
    `, orderID)

	a, err := scanAssignment(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find active assignment for order %q: %w", orderID, err)
	}
	return &a, nil
}

// InsertAssignment - insert a new assignment. A second active assignment for the same order is a conflict.
func (r *TxRepo) InsertAssignment(ctx context.Context, a domain.Assignment) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO transporter_assignments (`+assignmentColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
    `,
		a.ID, a.OrderID, a.TransporterID, string(a.Status),
		toLocationRow(a.PickupLocation), toLocationRow(a.DeliveryLocation), a.PickupPhoto, a.DeliveryPhoto,
		a.Timeline.AssignedAt, a.Timeline.PickedAt, a.Timeline.InTransitAt, a.Timeline.DeliveredAt, a.Timeline.CancelledAt,
		a.EstimatedDistanceKm, a.TransportFee, a.Notes, a.CancelReason,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// CompareAndSwap - persist the mutable fields of next if the stored status is still expected.
// Timeline columns are only filled when empty.
func (r *TxRepo) CompareAndSwap(ctx context.Context, next domain.Assignment, expected domain.AssignmentStatus) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE transporter_assignments
        SET status         = $3,
            pickup_photo   = $4,
            delivery_photo = $5,
            picked_at      = COALESCE(picked_at, $6),
            in_transit_at  = COALESCE(in_transit_at, $7),
            delivered_at   = COALESCE(delivered_at, $8),
            cancelled_at   = COALESCE(cancelled_at, $9),
            cancel_reason  = $10,
            updated_at     = $11
        WHERE id = $1 AND status = $2
    `,
		next.ID, string(expected), string(next.Status),
		next.PickupPhoto, next.DeliveryPhoto,
		next.Timeline.PickedAt, next.Timeline.InTransitAt, next.Timeline.DeliveredAt, next.Timeline.CancelledAt,
		next.CancelReason, next.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update assignment %s status: %w", next.ID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// AppendEvent - append a history row.
func (r *TxRepo) AppendEvent(ctx context.Context, e domain.AssignmentEvent) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO assignment_events (assignment_id, status, actor, at)
        VALUES ($1, $2, $3, $4)
    `, e.AssignmentID, string(e.Status), e.Actor, e.At)
	if err != nil {
		return fmt.Errorf("append assignment event: %w", err)
	}
	return nil
}

// EnqueuePayment - write a payment outbox row.
func (r *TxRepo) EnqueuePayment(ctx context.Context, e domain.PaymentEvent) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO payment_events (assignment_id, order_id, kind, transport_fee, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, e.AssignmentID, e.OrderID, string(e.Kind), e.TransportFee, e.Reason, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("enqueue payment event: %w", err)
	}
	return nil
}

func getAssignment(ctx context.Context, q rowQuerier, id uuid.UUID) (*domain.Assignment, error) {
	row := q.QueryRow(ctx, `SELECT `+assignmentColumns+` FROM transporter_assignments WHERE id = $1`, id)
	a, err := scanAssignment(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment %s: %w", id, err)
	}
	return &a, nil
}

func scanAssignment(row pgx.Row) (domain.Assignment, error) {
	var (
		a                  domain.Assignment
		status             string
		pickup, delivery   locationRow
		createdAt, updated time.Time
	)
	err := row.Scan(
		&a.ID, &a.OrderID, &a.TransporterID, &status,
		&pickup, &delivery, &a.PickupPhoto, &a.DeliveryPhoto,
		&a.Timeline.AssignedAt, &a.Timeline.PickedAt, &a.Timeline.InTransitAt, &a.Timeline.DeliveredAt, &a.Timeline.CancelledAt,
		&a.EstimatedDistanceKm, &a.TransportFee, &a.Notes, &a.CancelReason,
		&createdAt, &updated,
	)
	if err != nil {
		return domain.Assignment{}, err
	}
	a.Status = domain.AssignmentStatus(status)
	a.PickupLocation = pickup.toDomain()
	a.DeliveryLocation = delivery.toDomain()
	a.CreatedAt = createdAt.UTC()
	a.UpdatedAt = updated.UTC()
	utc(a.Timeline.AssignedAt, a.Timeline.PickedAt, a.Timeline.InTransitAt, a.Timeline.DeliveredAt, a.Timeline.CancelledAt)
	return a, nil
}

func utc(ts ...*time.Time) {
	for _, t := range ts {
		if t != nil {
			*t = t.UTC()
		}
	}
}

// locationRow is the JSONB shape of a location column.
type locationRow struct {
	Address     string          `json:"address"`
	City        string          `json:"city,omitempty"`
	State       string          `json:"state,omitempty"`
	Pincode     string          `json:"pincode,omitempty"`
	Coordinates *coordinatesRow `json:"coordinates,omitempty"`
}

type coordinatesRow struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func toLocationRow(l domain.Location) locationRow {
	out := locationRow{Address: l.Address, City: l.City, State: l.State, Pincode: l.Pincode}
	if l.Coordinates != nil {
		out.Coordinates = &coordinatesRow{Lat: l.Coordinates.Lat, Lng: l.Coordinates.Lng}
	}
	return out
}

func (l locationRow) toDomain() domain.Location {
	out := domain.Location{Address: l.Address, City: l.City, State: l.State, Pincode: l.Pincode}
	if l.Coordinates != nil {
		out.Coordinates = &domain.Coordinates{Lat: l.Coordinates.Lat, Lng: l.Coordinates.Lng}
	}
	return out
}
