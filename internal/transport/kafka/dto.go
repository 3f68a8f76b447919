package kafka

import (
	"strings"
	"time"

	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/service/jobs"
)

// JobEventDTO is the wire shape of an order or job event
type JobEventDTO struct {
	Event             string      `json:"event"`
	OrderID           string      `json:"order_id"`
	TransporterID     string      `json:"transporter_id,omitempty"`
	PickupLocation    LocationDTO `json:"pickup_location"`
	DeliveryLocation  LocationDTO `json:"delivery_location"`
	TransportFee      int64       `json:"transport_fee,omitempty"`
	EstimatedDistance *float64    `json:"estimated_distance,omitempty"`
	Notes             string      `json:"notes,omitempty"`
	Reason            string      `json:"reason,omitempty"`
	OccurredAt        time.Time   `json:"occurred_at"`
}

// LocationDTO is the wire shape of a location
type LocationDTO struct {
	Address     string          `json:"address"`
	City        string          `json:"city,omitempty"`
	State       string          `json:"state,omitempty"`
	Pincode     string          `json:"pincode,omitempty"`
	Coordinates *CoordinatesDTO `json:"coordinates,omitempty"`
}

// CoordinatesDTO is a lat/lng pair
type CoordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToDomain converts JobEventDTO to jobs.Event
func ToDomain(dto JobEventDTO) jobs.Event {
	return jobs.Event{
		Name:                strings.TrimSpace(dto.Event),
		OrderID:             strings.TrimSpace(dto.OrderID),
		TransporterID:       strings.TrimSpace(dto.TransporterID),
		Pickup:              dto.PickupLocation.toDomain(),
		Delivery:            dto.DeliveryLocation.toDomain(),
		TransportFee:        dto.TransportFee,
		EstimatedDistanceKm: dto.EstimatedDistance,
		Notes:               strings.TrimSpace(dto.Notes),
		Reason:              strings.TrimSpace(dto.Reason),
		OccurredAt:          dto.OccurredAt,
	}
}

func (l LocationDTO) toDomain() domain.Location {
	out := domain.Location{
		Address: strings.TrimSpace(l.Address),
		City:    strings.TrimSpace(l.City),
		State:   strings.TrimSpace(l.State),
		Pincode: strings.TrimSpace(l.Pincode),
	}
	if l.Coordinates != nil {
		out.Coordinates = &domain.Coordinates{Lat: l.Coordinates.Lat, Lng: l.Coordinates.Lng}
	}
	return out
}
