package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentEventKind is the kind of notification owed to the payment collaborator.
type PaymentEventKind string

// List of payment event kinds
const (
	PaymentDeliveryConfirmed PaymentEventKind = "delivery_confirmed"
	PaymentDeliveryCancelled PaymentEventKind = "delivery_cancelled"
)

// PaymentEvent is an outbox row committed together with a terminal transition.
type PaymentEvent struct {
	ID           int64
	AssignmentID uuid.UUID
	OrderID      string
	Kind         PaymentEventKind
	TransportFee int64
	Reason       string
	CreatedAt    time.Time
	Attempts     int
	LastError    string
	SentAt       *time.Time
}

// PaymentEventFor returns the outbox event owed after a entered a terminal status.
// ok is false when the status triggers no notification.
func PaymentEventFor(a Assignment) (PaymentEvent, bool) {
	ev := PaymentEvent{
		AssignmentID: a.ID,
		OrderID:      a.OrderID,
		TransportFee: a.TransportFee,
		CreatedAt:    a.UpdatedAt,
	}
	switch a.Status {
	case StatusDelivered:
		ev.Kind = PaymentDeliveryConfirmed
	case StatusCancelled:
		ev.Kind = PaymentDeliveryCancelled
		ev.Reason = a.CancelReason
	default:
		return PaymentEvent{}, false
	}
	return ev, true
}
