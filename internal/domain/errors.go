package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is matched by rejections for unreachable targets,
// terminal sources and stale expected statuses.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrMissingEvidence is matched by rejections for a required photo that is absent.
var ErrMissingEvidence = errors.New("missing evidence")

// RejectionKind classifies a rejected transition.
type RejectionKind string

// List of rejection kinds
const (
	RejectInvalidTransition RejectionKind = "invalid_transition"
	RejectMissingEvidence   RejectionKind = "missing_evidence"
)

// RejectionError describes why a transition was refused.
// Message is safe to show to the end user.
type RejectionError struct {
	Kind    RejectionKind
	From    AssignmentStatus
	To      AssignmentStatus
	Stale   bool
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %s", e.Kind, e.From, e.To, e.Message)
}

// Is makes errors.Is match the kind sentinels.
func (e *RejectionError) Is(target error) bool {
	switch target {
	case ErrInvalidTransition:
		return e.Kind == RejectInvalidTransition
	case ErrMissingEvidence:
		return e.Kind == RejectMissingEvidence
	}
	return false
}

// AsRejection extracts a *RejectionError from err.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

func invalidTransition(from, to AssignmentStatus) *RejectionError {
	msg := fmt.Sprintf("Cannot change status from %s to %s", from.label(), to.label())
	if from.Terminal() {
		msg = fmt.Sprintf("Assignment is already %s", from.label())
	}
	return &RejectionError{Kind: RejectInvalidTransition, From: from, To: to, Message: msg}
}

// StaleTransition reports that the persisted status no longer matches the caller's view.
func StaleTransition(expected, to AssignmentStatus) *RejectionError {
	return &RejectionError{
		Kind:    RejectInvalidTransition,
		From:    expected,
		To:      to,
		Stale:   true,
		Message: "Assignment status has changed, please refresh and try again",
	}
}

func missingEvidence(from, to AssignmentStatus, photo string) *RejectionError {
	return &RejectionError{
		Kind:    RejectMissingEvidence,
		From:    from,
		To:      to,
		Message: fmt.Sprintf("Please upload a %s photo before marking as %s", photo, to.label()),
	}
}
