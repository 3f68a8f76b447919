package assignment

import (
	"math"

	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/geo"
)

type tariffFeeCalculator struct {
	base  int64
	perKm int64
}

// NewFeeCalculator returns a FeeCalculator charging base plus perKm for every started kilometre.
func NewFeeCalculator(base, perKm int64) FeeCalculator {
	return tariffFeeCalculator{base: base, perKm: perKm}
}

// Quote requires coordinates on both locations.
func (c tariffFeeCalculator) Quote(pickup, delivery domain.Location) (Quote, error) {
	if pickup.Coordinates == nil {
		return Quote{}, &domain.ValidationError{Field: "pickup_location.coordinates", Reason: "is required"}
	}
	if delivery.Coordinates == nil {
		return Quote{}, &domain.ValidationError{Field: "delivery_location.coordinates", Reason: "is required"}
	}

	km := distanceKm(pickup, delivery)
	fee := c.base + c.perKm*int64(math.Ceil(km))
	return Quote{DistanceKm: km, TransportFee: fee}, nil
}

func distanceKm(pickup, delivery domain.Location) float64 {
	p, d := pickup.Coordinates, delivery.Coordinates
	return geo.RoundKm(geo.HaversineKm(p.Lat, p.Lng, d.Lat, d.Lng))
}
