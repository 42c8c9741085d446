package eligibility

import (
	"context"
	"fmt"

	"github.com/shiftwise/roster-backend-go/internal/domain/shift"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
)

// Evaluator answers whether a worker may work a shift type, and builds
// the per-organization equivalence registry. All decisions are pure;
// the repository only supplies configuration.
type Evaluator struct {
	shiftRepo shift.Repository
}

func NewEvaluator(shiftRepo shift.Repository) *Evaluator {
	return &Evaluator{shiftRepo: shiftRepo}
}

// CanWork loads the shift type and evaluates its eligibility rule
// against the worker.
func (e *Evaluator) CanWork(ctx context.Context, w worker.Worker, orgID, shiftTypeCode string) (bool, error) {
	st, err := e.shiftRepo.GetByCode(ctx, orgID, shiftTypeCode)
	if err != nil {
		return false, fmt.Errorf("failed to get shift type %s: %w", shiftTypeCode, err)
	}
	return st.Rule().Allows(w), nil
}

// Registry builds the equivalence registry from the organization's
// configured sets.
func (e *Evaluator) Registry(ctx context.Context, orgID string) (*shift.EquivalenceRegistry, error) {
	sets, err := e.shiftRepo.ListEquivalenceSets(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list equivalence sets: %w", err)
	}
	return shift.NewEquivalenceRegistry(sets), nil
}
