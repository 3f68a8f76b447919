package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"krishak-delivery/internal/domain"
)

// OutboxRepo represents payment outbox repository.
type OutboxRepo struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(db *pgxpool.Pool) *OutboxRepo {
	return &OutboxRepo{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// markTimeout bounds recording one row's outcome.
const markTimeout = 5 * time.Second

// ProcessPending hands up to limit unsent rows that have been tried fewer than
// maxAttempts times to fn, in id order. Each row is claimed with SKIP LOCKED and
// settled in its own transaction, so rows held by another relay are skipped and
// an outcome once recorded stays recorded. A nil result from fn marks the row
// sent; an error is stored on the row and it stays pending.
//
// When ctx ends mid-batch the current row is still settled, the remaining rows
// are left for the next run and the context error is returned with the counts.
func (r *OutboxRepo) ProcessPending(
	ctx context.Context,
	limit, maxAttempts int,
	fn func(ctx context.Context, e domain.PaymentEvent) error,
) (sent, failed int, err error) {
	var after int64
	for i := 0; i < limit; i++ {
		if err := ctx.Err(); err != nil {
			return sent, failed, fmt.Errorf("payment outbox batch cut short: %w", err)
		}
		e, ok, notifyErr, err := r.processNext(ctx, after, maxAttempts, fn)
		if err != nil {
			return sent, failed, err
		}
		if !ok {
			break
		}
		after = e.ID
		if notifyErr != nil {
			failed++
			continue
		}
		sent++
	}
	return sent, failed, nil
}

// processNext claims the first pending row with id > after, runs fn and records the outcome.
func (r *OutboxRepo) processNext(
	ctx context.Context,
	after int64,
	maxAttempts int,
	fn func(ctx context.Context, e domain.PaymentEvent) error,
) (e domain.PaymentEvent, found bool, notifyErr, err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return e, false, nil, fmt.Errorf("begin tx: %w", err)
	}
	// the outcome is written even if ctx expired while fn ran
	settleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), markTimeout)
	defer cancel()
	defer func() {
		if err != nil || !found {
			_ = tx.Rollback(settleCtx)
		}
	}()

	e, found, err = claimNext(ctx, tx, after, maxAttempts)
	if err != nil || !found {
		return e, found, nil, err
	}

	notifyErr = fn(ctx, e)
	if notifyErr != nil {
		err = markFailed(settleCtx, tx, e.ID, notifyErr)
	} else {
		err = markSent(settleCtx, tx, e.ID, r.now())
	}
	if err != nil {
		return e, true, notifyErr, err
	}
	if err = tx.Commit(settleCtx); err != nil {
		return e, true, notifyErr, fmt.Errorf("commit payment event %d: %w", e.ID, err)
	}
	return e, true, notifyErr, nil
}

func claimNext(ctx context.Context, tx pgx.Tx, after int64, maxAttempts int) (domain.PaymentEvent, bool, error) {
	var (
		e    domain.PaymentEvent
		kind string
	)
	err := tx.QueryRow(ctx, `
        SELECT id, assignment_id, order_id, kind, transport_fee, reason, created_at, attempts, last_error
        FROM payment_events
        WHERE sent_at IS NULL AND attempts < $2 AND id > $1
        ORDER BY id
        LIMIT 1
        FOR UPDATE SKIP LOCKED
    `, after, maxAttempts).Scan(&e.ID, &e.AssignmentID, &e.OrderID, &kind, &e.TransportFee,
		&e.Reason, &e.CreatedAt, &e.Attempts, &e.LastError)
	if err != nil {
		if IsNotFound(err) {
			return e, false, nil
		}
		return e, false, fmt.Errorf("claim pending payment event: %w", err)
	}
	e.Kind = domain.PaymentEventKind(kind)
	e.CreatedAt = e.CreatedAt.UTC()
	return e, true, nil
}

func markSent(ctx context.Context, tx pgx.Tx, id int64, at time.Time) error {
	_, err := tx.Exec(ctx, `
        UPDATE payment_events
        SET sent_at = $2, attempts = attempts + 1, last_error = ''
        WHERE id = $1
    `, id, at)
	if err != nil {
		return fmt.Errorf("mark payment event %d sent: %w", id, err)
	}
	return nil
}

func markFailed(ctx context.Context, tx pgx.Tx, id int64, cause error) error {
	_, err := tx.Exec(ctx, `
        UPDATE payment_events
        SET attempts = attempts + 1, last_error = $2
        WHERE id = $1
    `, id, cause.Error())
	if err != nil {
		return fmt.Errorf("mark payment event %d failed: %w", id, err)
	}
	return nil
}
