//go:generate mockgen -source=contracts.go -destination=jobs_mocks_test.go -package=jobs_test

package jobs

import (
	"context"

	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/service/assignment"
)

// AssignmentPort is the subset of the assignment service the Processor drives.
type AssignmentPort interface {
	Create(ctx context.Context, actor domain.Actor, in assignment.CreateInput) (domain.Assignment, error)
	CancelActiveForOrder(ctx context.Context, orderID, reason string) (domain.Assignment, bool, error)
}
