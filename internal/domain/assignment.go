package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxTextLen bounds free-text fields (notes, cancel reason, addresses).
const MaxTextLen = 500

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Location is a structured address with optional coordinates.
type Location struct {
	Address     string
	City        string
	State       string
	Pincode     string
	Coordinates *Coordinates
}

// Timeline holds the moment each status was first entered.
// A nil field means the status was never reached.
type Timeline struct {
	AssignedAt  *time.Time
	PickedAt    *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// At returns the timestamp recorded for status s.
func (t Timeline) At(s AssignmentStatus) *time.Time {
	switch s {
	case StatusAssigned:
		return t.AssignedAt
	case StatusPicked:
		return t.PickedAt
	case StatusInTransit:
		return t.InTransitAt
	case StatusDelivered:
		return t.DeliveredAt
	case StatusCancelled:
		return t.CancelledAt
	}
	return nil
}

// stamp sets the field for s unless it is already set.
func (t *Timeline) stamp(s AssignmentStatus, now time.Time) {
	var field **time.Time
	switch s {
	case StatusAssigned:
		field = &t.AssignedAt
	case StatusPicked:
		field = &t.PickedAt
	case StatusInTransit:
		field = &t.InTransitAt
	case StatusDelivered:
		field = &t.DeliveredAt
	case StatusCancelled:
		field = &t.CancelledAt
	default:
		return
	}
	if *field != nil {
		return
	}
	ts := now
	*field = &ts
}

// Assignment binds one transporter to one order for delivery.
type Assignment struct {
	ID                  uuid.UUID
	OrderID             string
	TransporterID       string
	Status              AssignmentStatus
	PickupLocation      Location
	DeliveryLocation    Location
	PickupPhoto         string
	DeliveryPhoto       string
	Timeline            Timeline
	EstimatedDistanceKm *float64
	TransportFee        int64 // minor currency units
	Notes               string
	CancelReason        string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewAssignmentParams carries the immutable inputs supplied by the order flow.
type NewAssignmentParams struct {
	OrderID             string
	TransporterID       string
	PickupLocation      Location
	DeliveryLocation    Location
	TransportFee        int64
	EstimatedDistanceKm *float64
	Notes               string
}

// ValidationError reports malformed creation input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewAssignment validates p and returns a fresh assignment in the assigned status.
func NewAssignment(id uuid.UUID, p NewAssignmentParams, now time.Time) (Assignment, error) {
	p.OrderID = strings.TrimSpace(p.OrderID)
	p.TransporterID = strings.TrimSpace(p.TransporterID)
	p.Notes = strings.TrimSpace(p.Notes)

	if id == uuid.Nil {
		return Assignment{}, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if p.OrderID == "" {
		return Assignment{}, &ValidationError{Field: "order_id", Reason: "is required"}
	}
	if p.TransporterID == "" {
		return Assignment{}, &ValidationError{Field: "transporter_id", Reason: "is required"}
	}
	if err := validateLocation("pickup_location", p.PickupLocation); err != nil {
		return Assignment{}, err
	}
	if err := validateLocation("delivery_location", p.DeliveryLocation); err != nil {
		return Assignment{}, err
	}
	if p.TransportFee < 0 {
		return Assignment{}, &ValidationError{Field: "transport_fee", Reason: "must be >= 0"}
	}
	if p.EstimatedDistanceKm != nil && *p.EstimatedDistanceKm < 0 {
		return Assignment{}, &ValidationError{Field: "estimated_distance", Reason: "must be >= 0"}
	}
	if len([]rune(p.Notes)) > MaxTextLen {
		return Assignment{}, &ValidationError{Field: "notes", Reason: fmt.Sprintf("must be at most %d characters", MaxTextLen)}
	}

	a := Assignment{
		ID:                  id,
		OrderID:             p.OrderID,
		TransporterID:       p.TransporterID,
		Status:              StatusAssigned,
		PickupLocation:      p.PickupLocation,
		DeliveryLocation:    p.DeliveryLocation,
		EstimatedDistanceKm: p.EstimatedDistanceKm,
		TransportFee:        p.TransportFee,
		Notes:               p.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	a.Timeline.stamp(StatusAssigned, now)
	return a, nil
}

func validateLocation(field string, l Location) error {
	addr := strings.TrimSpace(l.Address)
	if addr == "" {
		return &ValidationError{Field: field + ".address", Reason: "is required"}
	}
	if len([]rune(addr)) > MaxTextLen {
		return &ValidationError{Field: field + ".address", Reason: fmt.Sprintf("must be at most %d characters", MaxTextLen)}
	}
	if c := l.Coordinates; c != nil {
		if c.Lat < -90 || c.Lat > 90 {
			return &ValidationError{Field: field + ".coordinates.lat", Reason: "must be within [-90, 90]"}
		}
		if c.Lng < -180 || c.Lng > 180 {
			return &ValidationError{Field: field + ".coordinates.lng", Reason: "must be within [-180, 180]"}
		}
	}
	return nil
}

// AssignmentFilter narrows assignment listings. Empty fields match everything.
type AssignmentFilter struct {
	TransporterID string
	OrderID       string
	Status        *AssignmentStatus
	Limit         int
	Offset        int
}

// AssignmentEvent is one row of the append-only assignment history.
type AssignmentEvent struct {
	ID           int64
	AssignmentID uuid.UUID
	Status       AssignmentStatus
	Actor        string
	At           time.Time
}
