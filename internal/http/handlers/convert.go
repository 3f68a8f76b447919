package handlers

import (
	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/service/assignment"
)

func (l locationDTO) toModel() domain.Location {
	out := domain.Location{Address: l.Address, City: l.City, State: l.State, Pincode: l.Pincode}
	if l.Coordinates != nil {
		out.Coordinates = &domain.Coordinates{Lat: l.Coordinates.Lat, Lng: l.Coordinates.Lng}
	}
	return out
}

func locationToResponse(l domain.Location) locationDTO {
	out := locationDTO{Address: l.Address, City: l.City, State: l.State, Pincode: l.Pincode}
	if l.Coordinates != nil {
		out.Coordinates = &coordinatesDTO{Lat: l.Coordinates.Lat, Lng: l.Coordinates.Lng}
	}
	return out
}

func (r createAssignmentRequest) toInput() assignment.CreateInput {
	return assignment.CreateInput{
		OrderID:             r.OrderID,
		TransporterID:       r.TransporterID,
		PickupLocation:      r.PickupLocation.toModel(),
		DeliveryLocation:    r.DeliveryLocation.toModel(),
		TransportFee:        r.TransportFee,
		EstimatedDistanceKm: r.EstimatedDistanceKm,
		Notes:               r.Notes,
	}
}

func modelToResponse(a domain.Assignment) assignmentDTO {
	return assignmentDTO{
		ID:               a.ID,
		OrderID:          a.OrderID,
		TransporterID:    a.TransporterID,
		Status:           a.Status,
		PickupLocation:   locationToResponse(a.PickupLocation),
		DeliveryLocation: locationToResponse(a.DeliveryLocation),
		PickupPhoto:      a.PickupPhoto,
		DeliveryPhoto:    a.DeliveryPhoto,
		Timeline: timelineDTO{
			AssignedAt:  a.Timeline.AssignedAt,
			PickedAt:    a.Timeline.PickedAt,
			InTransitAt: a.Timeline.InTransitAt,
			DeliveredAt: a.Timeline.DeliveredAt,
			CancelledAt: a.Timeline.CancelledAt,
		},
		EstimatedDistanceKm: a.EstimatedDistanceKm,
		TransportFee:        a.TransportFee,
		Notes:               a.Notes,
		CancelReason:        a.CancelReason,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func modelsToResponse(list []domain.Assignment) []assignmentDTO {
	out := make([]assignmentDTO, 0, len(list))
	for _, a := range list {
		out = append(out, modelToResponse(a))
	}
	return out
}

func historyToResponse(events []domain.AssignmentEvent) []historyDTO {
	out := make([]historyDTO, 0, len(events))
	for _, e := range events {
		out = append(out, historyDTO{Status: e.Status, Actor: e.Actor, At: e.At})
	}
	return out
}
