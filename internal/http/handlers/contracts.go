package handlers

import (
	"context"

	"github.com/google/uuid"

	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/service/assignment"
	"krishak-delivery/internal/storage/photos"
)

//go:generate mockgen -source=contracts.go -destination=handlers_mocks_test.go -package=handlers

type assignmentUsecase interface {
	Create(ctx context.Context, actor domain.Actor, in assignment.CreateInput) (domain.Assignment, error)
	Transition(ctx context.Context, actor domain.Actor, id uuid.UUID, in assignment.TransitionInput) (domain.Assignment, error)
	Cancel(ctx context.Context, actor domain.Actor, id uuid.UUID, expected domain.AssignmentStatus, reason string) (domain.Assignment, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (domain.Assignment, error)
	List(ctx context.Context, actor domain.Actor, f domain.AssignmentFilter) ([]domain.Assignment, error)
	History(ctx context.Context, actor domain.Actor, id uuid.UUID) ([]domain.AssignmentEvent, error)
	Quote(pickup, delivery domain.Location) (assignment.Quote, error)
}

// NewAssignmentUsecase wires an assignment.Service into an assignmentUsecase.
func NewAssignmentUsecase(svc *assignment.Service) assignmentUsecase {
	return svc
}

type photoStore interface {
	Store(ctx context.Context, data []byte, meta photos.Meta) (string, error)
	Remove(ctx context.Context, ref string) error
	MaxBytes() int64
}

// NewPhotoStore wires a photos.FileStore into a photoStore.
func NewPhotoStore(s *photos.FileStore) photoStore {
	return s
}
