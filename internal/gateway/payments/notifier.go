package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"krishak-delivery/internal/domain"
)

// Publisher delivers an encoded payment message to a broker. key groups messages
// of one order; messageID is unique per assignment and kind, for consumer dedupe.
type Publisher interface {
	Publish(ctx context.Context, key, messageID, kind string, body []byte) error
}

// Message is the payload sent to the payment service.
type Message struct {
	Kind         domain.PaymentEventKind `json:"kind"`
	OrderID      string                  `json:"order_id"`
	AssignmentID uuid.UUID               `json:"assignment_id"`
	TransportFee int64                   `json:"transport_fee,omitempty"`
	Reason       string                  `json:"reason,omitempty"`
	OccurredAt   time.Time               `json:"occurred_at"`
}

// PublishingNotifier turns delivery outcomes into broker messages keyed by order id.
// Redeliveries of one outcome share a message id.
type PublishingNotifier struct {
	pub Publisher
	now func() time.Time
}

// NewPublishingNotifier returns a notifier publishing through pub.
func NewPublishingNotifier(pub Publisher) *PublishingNotifier {
	return &PublishingNotifier{pub: pub, now: func() time.Time { return time.Now().UTC() }}
}

// OnDeliveryConfirmed asks payment to capture the order and pay the transporter.
func (n *PublishingNotifier) OnDeliveryConfirmed(ctx context.Context, orderID string, assignmentID uuid.UUID, transportFee int64) error {
	return n.publish(ctx, Message{
		Kind:         domain.PaymentDeliveryConfirmed,
		OrderID:      orderID,
		AssignmentID: assignmentID,
		TransportFee: transportFee,
	})
}

// OnDeliveryCancelled tells payment the delivery will not happen.
func (n *PublishingNotifier) OnDeliveryCancelled(ctx context.Context, orderID string, assignmentID uuid.UUID, reason string) error {
	return n.publish(ctx, Message{
		Kind:         domain.PaymentDeliveryCancelled,
		OrderID:      orderID,
		AssignmentID: assignmentID,
		Reason:       reason,
	})
}

func (n *PublishingNotifier) publish(ctx context.Context, m Message) error {
	m.OccurredAt = n.now()
	body, err := json.Marshal(m)
	if err != nil {
		return Permanent(fmt.Errorf("encode payment message: %w", err))
	}
	if err := n.pub.Publish(ctx, m.OrderID, MessageID(m.AssignmentID, m.Kind), string(m.Kind), body); err != nil {
		return fmt.Errorf("publish %s for order %s: %w", m.Kind, m.OrderID, err)
	}
	return nil
}

// MessageID identifies one payment outcome of one assignment.
func MessageID(assignmentID uuid.UUID, kind domain.PaymentEventKind) string {
	return assignmentID.String() + ":" + string(kind)
}
