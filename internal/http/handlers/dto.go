package handlers

import (
	"time"

	"github.com/google/uuid"

	"krishak-delivery/internal/domain"
)

type coordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type locationDTO struct {
	Address     string          `json:"address"`
	City        string          `json:"city,omitempty"`
	State       string          `json:"state,omitempty"`
	Pincode     string          `json:"pincode,omitempty"`
	Coordinates *coordinatesDTO `json:"coordinates,omitempty"`
}

type timelineDTO struct {
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	PickedAt    *time.Time `json:"picked_at,omitempty"`
	InTransitAt *time.Time `json:"in_transit_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

type assignmentDTO struct {
	ID                  uuid.UUID               `json:"id"`
	OrderID             string                  `json:"order_id"`
	TransporterID       string                  `json:"transporter_id"`
	Status              domain.AssignmentStatus `json:"status"`
	PickupLocation      locationDTO             `json:"pickup_location"`
	DeliveryLocation    locationDTO             `json:"delivery_location"`
	PickupPhoto         string                  `json:"pickup_photo,omitempty"`
	DeliveryPhoto       string                  `json:"delivery_photo,omitempty"`
	Timeline            timelineDTO             `json:"timeline"`
	EstimatedDistanceKm *float64                `json:"estimated_distance_km,omitempty"`
	TransportFee        int64                   `json:"transport_fee"`
	Notes               string                  `json:"notes,omitempty"`
	CancelReason        string                  `json:"cancel_reason,omitempty"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

type historyDTO struct {
	Status domain.AssignmentStatus `json:"status"`
	Actor  string                  `json:"actor"`
	At     time.Time               `json:"at"`
}

type createAssignmentRequest struct {
	OrderID             string      `json:"order_id"`
	TransporterID       string      `json:"transporter_id"`
	PickupLocation      locationDTO `json:"pickup_location"`
	DeliveryLocation    locationDTO `json:"delivery_location"`
	TransportFee        int64       `json:"transport_fee"`
	EstimatedDistanceKm *float64    `json:"estimated_distance_km,omitempty"`
	Notes               string      `json:"notes,omitempty"`
}

type quoteRequest struct {
	PickupLocation   locationDTO `json:"pickup_location"`
	DeliveryLocation locationDTO `json:"delivery_location"`
}

type quoteResponse struct {
	DistanceKm   float64 `json:"distance_km"`
	TransportFee int64   `json:"transport_fee"`
}

type statusRequest struct {
	ExpectedStatus domain.AssignmentStatus `json:"expected_status,omitempty"`
	Status         domain.AssignmentStatus `json:"status"`
	PhotoURL       string                  `json:"photo_url,omitempty"`
	Reason         string                  `json:"reason,omitempty"`
}

type cancelRequest struct {
	ExpectedStatus domain.AssignmentStatus `json:"expected_status,omitempty"`
	Reason         string                  `json:"reason,omitempty"`
}

type photoResponse struct {
	URL string `json:"url"`
}
