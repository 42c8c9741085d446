package preference

import (
	"context"

	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
)

type Service interface {
	Submit(ctx context.Context, caller worker.Caller, req SubmitPreferencesRequest) ([]PreferenceResponse, error)
	ListMine(ctx context.Context, caller worker.Caller, year, month int) ([]PreferenceResponse, error)
	ListForOrg(ctx context.Context, caller worker.Caller, year, month int) ([]PreferenceResponse, error)
}
