package domain

// Role is the role carried by an authenticated caller.
type Role string

// List of roles
const (
	RoleTransporter Role = "transporter"
	RoleAdmin       Role = "admin"
	RoleSystem      Role = "system"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleTransporter, RoleAdmin, RoleSystem:
		return true
	}
	return false
}

// Actor identifies who performs an operation.
type Actor struct {
	ID   string
	Role Role
}

// SystemActor is used for operations triggered by upstream order events.
func SystemActor() Actor {
	return Actor{ID: "order-events", Role: RoleSystem}
}

// Privileged reports whether the actor may act on any assignment.
func (a Actor) Privileged() bool {
	return a.Role == RoleAdmin || a.Role == RoleSystem
}

// Owns reports whether the actor is the transporter assigned to as.
func (a Actor) Owns(as Assignment) bool {
	return a.Role == RoleTransporter && a.ID != "" && a.ID == as.TransporterID
}

// String renders the actor as role:id for the history trail.
func (a Actor) String() string {
	return string(a.Role) + ":" + a.ID
}
