package worker

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Worker entity
type Worker struct {
	ID    string
	OrgID string

	Email    string
	FullName string

	// CapabilityCode is the worker's declared subspecialty, matched against
	// shift types that require a capability. Nil means no declared capability.
	CapabilityCode *string

	Role     Role
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCapability reports whether the worker declares the given capability code.
func (w Worker) HasCapability(code string) bool {
	return w.CapabilityCode != nil && *w.CapabilityCode == code
}
