package assignmenttx

import (
	"context"

	"github.com/google/uuid"

	"krishak-delivery/internal/domain"
)

// Repository is the set of assignment writes available inside a transaction.
type Repository interface {
	GetAssignment(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	FindActiveByOrder(ctx context.Context, orderID string) (*domain.Assignment, error)
	InsertAssignment(ctx context.Context, a domain.Assignment) error
	// CompareAndSwap persists next only if the stored status still equals expected.
	// It reports false when another writer got there first.
	CompareAndSwap(ctx context.Context, next domain.Assignment, expected domain.AssignmentStatus) (bool, error)
	AppendEvent(ctx context.Context, e domain.AssignmentEvent) error
	EnqueuePayment(ctx context.Context, e domain.PaymentEvent) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
