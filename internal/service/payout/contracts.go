//go:generate mockgen -source=contracts.go -destination=payout_mocks_test.go -package=payout_test

package payout

import (
	"context"

	"github.com/google/uuid"

	"krishak-delivery/internal/domain"
)

// Notifier is the payment collaborator told about terminal delivery outcomes.
type Notifier interface {
	OnDeliveryConfirmed(ctx context.Context, orderID string, assignmentID uuid.UUID, transportFee int64) error
	OnDeliveryCancelled(ctx context.Context, orderID string, assignmentID uuid.UUID, reason string) error
}

type outboxStore interface {
	ProcessPending(
		ctx context.Context,
		limit, maxAttempts int,
		fn func(ctx context.Context, e domain.PaymentEvent) error,
	) (sent, failed int, err error)
}
