package assignment

import (
	"context"
	"fmt"

	"github.com/shiftwise/roster-backend-go/internal/domain/assignment"
	"github.com/shiftwise/roster-backend-go/internal/domain/shift"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
	"github.com/shiftwise/roster-backend-go/internal/pkg/validator"
)

type Service struct {
	assignmentRepo assignment.Repository
	workerRepo     worker.Repository
	shiftRepo      shift.Repository
}

func NewAssignmentService(assignmentRepo assignment.Repository, workerRepo worker.Repository, shiftRepo shift.Repository) *Service {
	return &Service{
		assignmentRepo: assignmentRepo,
		workerRepo:     workerRepo,
		shiftRepo:      shiftRepo,
	}
}

// Create records a manual assignment. Generated rows arrive through the
// same table from the external schedule generator.
func (s *Service) Create(ctx context.Context, caller worker.Caller, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if !caller.IsAdmin() {
		return assignment.AssignmentResponse{}, worker.ErrAdminRequired
	}
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	target, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to get worker: %w", err)
	}
	if target.OrgID != caller.OrgID {
		return assignment.AssignmentResponse{}, worker.ErrWorkerNotFound
	}

	if _, err := s.shiftRepo.GetByCode(ctx, caller.OrgID, req.ShiftTypeCode); err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to get shift type: %w", err)
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.assignmentRepo.Create(ctx, assignment.Assignment{
		OrgID:         caller.OrgID,
		WorkerID:      req.WorkerID,
		Date:          date,
		ShiftTypeCode: req.ShiftTypeCode,
		Type:          assignment.TypeManual,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}
	created.WorkerName = &target.FullName

	return assignment.ToResponse(created), nil
}

func (s *Service) List(ctx context.Context, caller worker.Caller, dateFrom, dateTo, workerID *string) ([]assignment.AssignmentResponse, error) {
	filter, err := buildFilter(caller.OrgID, dateFrom, dateTo, workerID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return toResponses(assignments), nil
}

func (s *Service) ListMine(ctx context.Context, caller worker.Caller, dateFrom, dateTo *string) ([]assignment.AssignmentResponse, error) {
	return s.List(ctx, caller, dateFrom, dateTo, &caller.WorkerID)
}

func buildFilter(orgID string, dateFrom, dateTo, workerID *string) (assignment.Filter, error) {
	var errs validator.ValidationErrors
	filter := assignment.Filter{OrgID: orgID, WorkerID: workerID}

	if dateFrom != nil {
		from, ok := validator.IsValidDate(*dateFrom)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date_from", Message: "date_from must be in YYYY-MM-DD format"})
		} else {
			filter.DateFrom = &from
		}
	}
	if dateTo != nil {
		to, ok := validator.IsValidDate(*dateTo)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date_to", Message: "date_to must be in YYYY-MM-DD format"})
		} else {
			filter.DateTo = &to
		}
	}

	if len(errs) > 0 {
		return assignment.Filter{}, errs
	}
	return filter, nil
}

func toResponses(assignments []assignment.Assignment) []assignment.AssignmentResponse {
	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, assignment.ToResponse(a))
	}
	return responses
}
