//go:generate mockgen -source=contracts.go -destination=assignment_mocks_test.go -package=assignment_test

package assignment

import (
	"context"

	"github.com/google/uuid"

	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/ports/assignmenttx"
)

type assignmentRepository interface {
	assignmenttx.Runner
	Get(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	List(ctx context.Context, f domain.AssignmentFilter) ([]domain.Assignment, error)
	ListHistory(ctx context.Context, id uuid.UUID) ([]domain.AssignmentEvent, error)
}

// FeeCalculator quotes the distance and transport fee between two locations.
type FeeCalculator interface {
	Quote(pickup, delivery domain.Location) (Quote, error)
}

// Quote is a fee estimate in minor currency units.
type Quote struct {
	DistanceKm   float64
	TransportFee int64
}
