package assignment_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"krishak-delivery/internal/apperr"
	"krishak-delivery/internal/domain"
	"krishak-delivery/internal/ports/assignmenttx"
)

// memRepo is an in-memory store with the same compare-and-swap semantics as the
// PostgreSQL repository. Writes made inside a failed transaction are undone.
type memRepo struct {
	mu       sync.Mutex
	items    map[uuid.UUID]domain.Assignment
	events   []domain.AssignmentEvent
	payments []domain.PaymentEvent

	// readBarrier, when set, holds every GetAssignment until all readers arrived.
	readBarrier *sync.WaitGroup
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[uuid.UUID]domain.Assignment{}}
}

func (r *memRepo) put(a domain.Assignment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.ID] = a
}

func (r *memRepo) stored(id uuid.UUID) domain.Assignment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id]
}

func (r *memRepo) history() []domain.AssignmentEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AssignmentEvent(nil), r.events...)
}

func (r *memRepo) outbox() []domain.PaymentEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.PaymentEvent(nil), r.payments...)
}

func (r *memRepo) WithTx(_ context.Context, fn func(tx assignmenttx.Repository) error) error {
	tx := &memTx{r: r, undo: map[uuid.UUID]*domain.Assignment{}}
	if err := fn(tx); err != nil {
		tx.rollback()
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, tx.events...)
	r.payments = append(r.payments, tx.payments...)
	return nil
}

func (r *memRepo) Get(_ context.Context, id uuid.UUID) (*domain.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memRepo) List(_ context.Context, f domain.AssignmentFilter) ([]domain.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Assignment
	for _, a := range r.items {
		if f.TransporterID != "" && a.TransporterID != f.TransporterID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *memRepo) ListHistory(_ context.Context, id uuid.UUID) ([]domain.AssignmentEvent, error) {
	var out []domain.AssignmentEvent
	for _, e := range r.history() {
		if e.AssignmentID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

type memTx struct {
	r        *memRepo
	undo     map[uuid.UUID]*domain.Assignment
	events   []domain.AssignmentEvent
	payments []domain.PaymentEvent
}

func (tx *memTx) rollback() {
	tx.r.mu.Lock()
	defer tx.r.mu.Unlock()
	for id, prev := range tx.undo {
		if prev == nil {
			delete(tx.r.items, id)
			continue
		}
		tx.r.items[id] = *prev
	}
}

func (tx *memTx) remember(id uuid.UUID) {
	if _, ok := tx.undo[id]; ok {
		return
	}
	if prev, ok := tx.r.items[id]; ok {
		tx.undo[id] = &prev
		return
	}
	tx.undo[id] = nil
}

func (tx *memTx) GetAssignment(_ context.Context, id uuid.UUID) (*domain.Assignment, error) {
	tx.r.mu.Lock()
	a, ok := tx.r.items[id]
	barrier := tx.r.readBarrier
	tx.r.mu.Unlock()

	if barrier != nil {
		barrier.Done()
		barrier.Wait()
	}
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (tx *memTx) FindActiveByOrder(_ context.Context, orderID string) (*domain.Assignment, error) {
	tx.r.mu.Lock()
	defer tx.r.mu.Unlock()
	for _, a := range tx.r.items {
		if a.OrderID == orderID && a.Status != domain.StatusCancelled {
			return &a, nil
		}
	}
	return nil, nil
}

func (tx *memTx) InsertAssignment(_ context.Context, a domain.Assignment) error {
	tx.r.mu.Lock()
	defer tx.r.mu.Unlock()
	for _, existing := range tx.r.items {
		if existing.OrderID == a.OrderID && existing.Status != domain.StatusCancelled {
			return apperr.ErrConflict
		}
	}
	tx.remember(a.ID)
	tx.r.items[a.ID] = a
	return nil
}

func (tx *memTx) CompareAndSwap(_ context.Context, next domain.Assignment, expected domain.AssignmentStatus) (bool, error) {
	tx.r.mu.Lock()
	defer tx.r.mu.Unlock()
	cur, ok := tx.r.items[next.ID]
	if !ok || cur.Status != expected {
		return false, nil
	}
	tx.remember(next.ID)
	tx.r.items[next.ID] = next
	return true, nil
}

func (tx *memTx) AppendEvent(_ context.Context, e domain.AssignmentEvent) error {
	tx.events = append(tx.events, e)
	return nil
}

func (tx *memTx) EnqueuePayment(_ context.Context, e domain.PaymentEvent) error {
	tx.payments = append(tx.payments, e)
	return nil
}
