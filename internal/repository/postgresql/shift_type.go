package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/roster-backend-go/internal/domain/shift"
	"github.com/shiftwise/roster-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

func (r *shiftRepositoryImpl) GetByCode(ctx context.Context, orgID, code string) (shift.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT st.id, st.org_id, st.code, st.name,
			   st.allow_any, st.required_capability, st.allowlist_emails,
			   st.created_at, st.updated_at
		FROM shift_types st
		WHERE st.org_id = $1 AND st.code = $2
	`

	var st shift.ShiftType
	err := q.QueryRow(ctx, query, orgID, code).Scan(
		&st.ID,
		&st.OrgID,
		&st.Code,
		&st.Name,
		&st.AllowAny,
		&st.RequiredCapability,
		&st.AllowlistEmails,
		&st.CreatedAt,
		&st.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ShiftType{}, shift.ErrShiftTypeNotFound
		}
		return shift.ShiftType{}, err
	}
	return st, nil
}

func (r *shiftRepositoryImpl) ListByOrg(ctx context.Context, orgID string) ([]shift.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT st.id, st.org_id, st.code, st.name,
			   st.allow_any, st.required_capability, st.allowlist_emails,
			   st.created_at, st.updated_at
		FROM shift_types st
		WHERE st.org_id = $1
		ORDER BY st.code ASC
	`

	rows, err := q.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []shift.ShiftType
	for rows.Next() {
		var st shift.ShiftType
		err := rows.Scan(
			&st.ID,
			&st.OrgID,
			&st.Code,
			&st.Name,
			&st.AllowAny,
			&st.RequiredCapability,
			&st.AllowlistEmails,
			&st.CreatedAt,
			&st.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		types = append(types, st)
	}
	return types, rows.Err()
}

func (r *shiftRepositoryImpl) ListEquivalenceSets(ctx context.Context, orgID string) ([]shift.EquivalenceSet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT es.id, es.org_id, es.code, es.members
		FROM equivalence_sets es
		WHERE es.org_id = $1
		ORDER BY es.code ASC
	`

	rows, err := q.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []shift.EquivalenceSet
	for rows.Next() {
		var es shift.EquivalenceSet
		if err := rows.Scan(&es.ID, &es.OrgID, &es.Code, &es.Members); err != nil {
			return nil, err
		}
		sets = append(sets, es)
	}
	return sets, rows.Err()
}
