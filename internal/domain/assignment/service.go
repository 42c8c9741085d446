package assignment

import (
	"context"

	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
)

type Service interface {
	Create(ctx context.Context, caller worker.Caller, req CreateAssignmentRequest) (AssignmentResponse, error)
	List(ctx context.Context, caller worker.Caller, dateFrom, dateTo, workerID *string) ([]AssignmentResponse, error)
	ListMine(ctx context.Context, caller worker.Caller, dateFrom, dateTo *string) ([]AssignmentResponse, error)
}
