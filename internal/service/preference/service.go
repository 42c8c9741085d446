package preference

import (
	"context"
	"fmt"

	"github.com/shiftwise/roster-backend-go/internal/domain/preference"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
	"github.com/shiftwise/roster-backend-go/internal/pkg/database"
	"github.com/shiftwise/roster-backend-go/internal/pkg/validator"
)

type Service struct {
	txRunner       database.TxRunner
	preferenceRepo preference.Repository
	workerRepo     worker.Repository
}

func NewPreferenceService(txRunner database.TxRunner, preferenceRepo preference.Repository, workerRepo worker.Repository) *Service {
	return &Service{
		txRunner:       txRunner,
		preferenceRepo: preferenceRepo,
		workerRepo:     workerRepo,
	}
}

// Submit replaces the worker's whole preference list for the period.
// Staff may only submit for themselves; admins may submit on behalf of
// any worker in their organization.
func (s *Service) Submit(ctx context.Context, caller worker.Caller, req preference.SubmitPreferencesRequest) ([]preference.PreferenceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.WorkerID != caller.WorkerID && !caller.IsAdmin() {
		return nil, worker.ErrForbidden
	}

	target, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	if target.OrgID != caller.OrgID {
		return nil, worker.ErrWorkerNotFound
	}

	prefs := make([]preference.VacationPreference, 0, len(req.Items))
	for _, item := range req.Items {
		weekStart, _ := validator.IsValidDate(item.WeekStart)
		weekEnd, _ := validator.IsValidDate(item.WeekEnd)
		prefs = append(prefs, preference.VacationPreference{
			Rank:      item.Rank,
			WeekStart: weekStart,
			WeekEnd:   weekEnd,
			Status:    preference.StatusSubmitted,
		})
	}

	// Delete plus recreate must be atomic so a failed resubmission never
	// leaves the period half-replaced.
	var created []preference.VacationPreference
	err = s.txRunner.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.preferenceRepo.ReplaceForPeriod(txCtx, caller.OrgID, req.WorkerID, req.Year, req.Month, prefs)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace preferences: %w", err)
	}

	responses := make([]preference.PreferenceResponse, 0, len(created))
	for _, p := range created {
		responses = append(responses, preference.ToResponse(p))
	}
	return responses, nil
}

func (s *Service) ListMine(ctx context.Context, caller worker.Caller, year, month int) ([]preference.PreferenceResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "month must be between 1 and 12"}}
	}

	prefs, err := s.preferenceRepo.ListForWorker(ctx, caller.WorkerID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}

	responses := make([]preference.PreferenceResponse, 0, len(prefs))
	for _, p := range prefs {
		responses = append(responses, preference.ToResponse(p))
	}
	return responses, nil
}

func (s *Service) ListForOrg(ctx context.Context, caller worker.Caller, year, month int) ([]preference.PreferenceResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "month must be between 1 and 12"}}
	}

	prefs, err := s.preferenceRepo.ListForOrg(ctx, caller.OrgID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}

	responses := make([]preference.PreferenceResponse, 0, len(prefs))
	for _, p := range prefs {
		responses = append(responses, preference.ToResponse(p))
	}
	return responses, nil
}
