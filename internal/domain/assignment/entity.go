package assignment

import "time"

type Type string

const (
	TypeGenerated Type = "GENERATED"
	TypeManual    Type = "MANUAL"
	TypeSwapped   Type = "SWAPPED"
)

// Assignment entity. Rows are created by the schedule generator or manual
// entry and never deleted here; the swap engine is the only mutator of
// WorkerID and Type.
type Assignment struct {
	ID    string
	OrgID string

	WorkerID      string
	Date          time.Time
	ShiftTypeCode string
	Type          Type

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	WorkerName *string
}
