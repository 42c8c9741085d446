package assignment

import (
	"context"
	"time"
)

// Repository - interface for the assignments table
type Repository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	List(ctx context.Context, filter Filter) ([]Assignment, error)
	ListByDate(ctx context.Context, orgID string, date time.Time) ([]Assignment, error)
	// ReassignWorker moves an assignment to a new worker and marks it
	// SWAPPED. Called only inside the swap exchange transaction.
	ReassignWorker(ctx context.Context, id, newWorkerID string) error
}
