package assignment

import (
	"time"

	"github.com/google/uuid"
)

// SetClock replaces the service clock in tests.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// SetIDGenerator replaces the assignment id generator in tests.
func (s *Service) SetIDGenerator(fn func() uuid.UUID) { s.newID = fn }
