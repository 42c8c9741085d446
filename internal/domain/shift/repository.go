package shift

import "context"

// Repository - interface for the shift_types and equivalence_sets tables
type Repository interface {
	GetByCode(ctx context.Context, orgID, code string) (ShiftType, error)
	ListByOrg(ctx context.Context, orgID string) ([]ShiftType, error)
	ListEquivalenceSets(ctx context.Context, orgID string) ([]EquivalenceSet, error)
}
