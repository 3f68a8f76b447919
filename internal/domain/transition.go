package domain

import (
	"fmt"
	"strings"
	"time"
)

// TransitionRequest is a proposed status change on an assignment.
type TransitionRequest struct {
	// Expected is the status the caller believes is current.
	Expected AssignmentStatus
	Target   AssignmentStatus
	// Evidence is a photo reference accompanying the transition, if any.
	Evidence string
	// Reason is kept only for cancellations.
	Reason string
	At     time.Time
}

// Transition validates req against the persisted assignment a and returns the
// updated copy. a itself is never modified, so a rejection leaves no trace.
func (a Assignment) Transition(req TransitionRequest) (Assignment, error) {
	if !req.Target.Valid() {
		return Assignment{}, invalidTransition(a.Status, req.Target)
	}
	if req.Expected != a.Status {
		return Assignment{}, StaleTransition(req.Expected, req.Target)
	}
	if !a.Status.CanTransitionTo(req.Target) {
		return Assignment{}, invalidTransition(a.Status, req.Target)
	}

	evidence := strings.TrimSpace(req.Evidence)
	reason := strings.TrimSpace(req.Reason)

	next := a
	switch req.Target {
	case StatusPicked:
		if evidence != "" {
			next.PickupPhoto = evidence
		}
		if next.PickupPhoto == "" {
			return Assignment{}, missingEvidence(a.Status, req.Target, "pickup")
		}
	case StatusDelivered:
		if evidence != "" {
			next.DeliveryPhoto = evidence
		}
		if next.DeliveryPhoto == "" {
			return Assignment{}, missingEvidence(a.Status, req.Target, "delivery")
		}
	case StatusCancelled:
		if len([]rune(reason)) > MaxTextLen {
			return Assignment{}, &ValidationError{
				Field:  "reason",
				Reason: fmt.Sprintf("must be at most %d characters", MaxTextLen),
			}
		}
		next.CancelReason = reason
	}

	next.Status = req.Target
	next.Timeline.stamp(req.Target, req.At)
	next.UpdatedAt = req.At
	return next, nil
}
