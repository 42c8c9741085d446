package preference

import "context"

// Repository - interface for the vacation_preferences table
type Repository interface {
	// ReplaceForPeriod deletes a worker's preferences for the period and
	// inserts the given ones. Runs inside a transaction when the caller
	// provides one.
	ReplaceForPeriod(ctx context.Context, orgID, workerID string, year, month int, prefs []VacationPreference) ([]VacationPreference, error)
	ListForWorker(ctx context.Context, workerID string, year, month int) ([]VacationPreference, error)
	ListForOrg(ctx context.Context, orgID string, year, month int) ([]VacationPreference, error)
}
