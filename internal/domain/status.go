package domain

// AssignmentStatus represents the delivery status of a transporter assignment.
type AssignmentStatus string

// List of possible assignment statuses
const (
	StatusAssigned  AssignmentStatus = "assigned"
	StatusPicked    AssignmentStatus = "picked"
	StatusInTransit AssignmentStatus = "in_transit"
	StatusDelivered AssignmentStatus = "delivered"
	StatusCancelled AssignmentStatus = "cancelled"
)

// successors is the fixed transition table.
var successors = map[AssignmentStatus][]AssignmentStatus{
	StatusAssigned:  {StatusPicked, StatusCancelled},
	StatusPicked:    {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// AllStatuses returns every known status in lifecycle order.
func AllStatuses() []AssignmentStatus {
	return []AssignmentStatus{
		StatusAssigned, StatusPicked, StatusInTransit, StatusDelivered, StatusCancelled,
	}
}

// Valid checks if the AssignmentStatus is known.
func (s AssignmentStatus) Valid() bool {
	_, ok := successors[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s AssignmentStatus) Terminal() bool {
	next, ok := successors[s]
	return ok && len(next) == 0
}

// Active reports whether the assignment still holds its order.
func (s AssignmentStatus) Active() bool {
	return s.Valid() && !s.Terminal()
}

// Successors returns a copy of the statuses reachable from s in one step.
func (s AssignmentStatus) Successors() []AssignmentStatus {
	next := successors[s]
	out := make([]AssignmentStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether next is an allowed successor of s.
func (s AssignmentStatus) CanTransitionTo(next AssignmentStatus) bool {
	for _, v := range successors[s] {
		if v == next {
			return true
		}
	}
	return false
}

// label is the wording used in user-facing messages.
func (s AssignmentStatus) label() string {
	switch s {
	case StatusPicked:
		return "picked up"
	case StatusInTransit:
		return "in transit"
	default:
		return string(s)
	}
}
