package shift

import "time"

// ShiftType entity. Eligibility configuration is stored as three optional
// columns; Rule() collapses them into a single tagged rule.
type ShiftType struct {
	ID    string
	OrgID string

	Code string
	Name string

	AllowAny           bool
	RequiredCapability *string
	AllowlistEmails    []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EquivalenceSet groups shift type codes that are interchangeable for
// swap purposes. Membership is a set; order is irrelevant.
type EquivalenceSet struct {
	ID    string
	OrgID string

	Code    string
	Members []string
}
