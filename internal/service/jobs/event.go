package jobs

import (
	"time"

	"krishak-delivery/internal/domain"
)

// Event names understood by the Processor.
const (
	EventJobAccepted    = "job.accepted"
	EventOrderCancelled = "order.cancelled"
)

// Event is a single upstream order or job event.
type Event struct {
	Name                string
	OrderID             string
	TransporterID       string
	Pickup              domain.Location
	Delivery            domain.Location
	TransportFee        int64
	EstimatedDistanceKm *float64
	Notes               string
	Reason              string
	OccurredAt          time.Time
}
