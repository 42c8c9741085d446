package worker

import "context"

// Repository - interface for the workers table (the roster)
type Repository interface {
	GetByID(ctx context.Context, id string) (Worker, error)
	ListByOrg(ctx context.Context, orgID string, role *Role) ([]Worker, error)
}
