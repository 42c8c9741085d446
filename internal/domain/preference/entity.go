package preference

import "time"

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusGranted   Status = "granted"
)

// VacationPreference entity. One ranked time-off week request for a
// worker and period. Unique per (worker, year, month, rank); a period's
// preferences are fully replaced on resubmission.
type VacationPreference struct {
	ID    string
	OrgID string

	WorkerID string
	Year     int
	Month    int
	Rank     int

	WeekStart time.Time
	WeekEnd   time.Time

	Status Status

	CreatedAt time.Time
}
