package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
	"github.com/shiftwise/roster-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepositoryImpl{db: db}
}

const workerColumns = `
	w.id, w.org_id, w.email, w.full_name, w.capability_code,
	w.role, w.is_active, w.created_at, w.updated_at
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID,
		&w.OrgID,
		&w.Email,
		&w.FullName,
		&w.CapabilityCode,
		&w.Role,
		&w.IsActive,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	return w, err
}

func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers w WHERE w.id = $1`

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}
	return w, nil
}

func (r *workerRepositoryImpl) ListByOrg(ctx context.Context, orgID string, role *worker.Role) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers w WHERE w.org_id = $1 AND w.is_active = TRUE`
	args := []interface{}{orgID}

	if role != nil {
		query += ` AND w.role = $2`
		args = append(args, *role)
	}
	query += ` ORDER BY w.full_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}
