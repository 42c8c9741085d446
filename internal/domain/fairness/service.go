package fairness

import "context"

type Service interface {
	// Report computes per-worker month and year-to-date points for the
	// organization's staff roster.
	Report(ctx context.Context, orgID string, year, month int) (Report, error)
}
