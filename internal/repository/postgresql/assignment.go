package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/roster-backend-go/internal/domain/assignment"
	"github.com/shiftwise/roster-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.Repository {
	return &assignmentRepositoryImpl{db: db}
}

func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assignments (
			id, org_id, worker_id, shift_date, shift_type_code, assignment_type,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.OrgID, a.WorkerID, a.Date, a.ShiftTypeCode, a.Type,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err, "assignments_worker_date_shift_key") {
			return assignment.Assignment{}, assignment.ErrDuplicateSlot
		}
		return assignment.Assignment{}, err
	}

	return a, nil
}

func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.org_id, a.worker_id, a.shift_date, a.shift_type_code, a.assignment_type,
			   a.created_at, a.updated_at,
			   w.full_name as worker_name
		FROM assignments a
		JOIN workers w ON a.worker_id = w.id
		WHERE a.id = $1
	`

	var a assignment.Assignment
	var workerName string
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.OrgID, &a.WorkerID, &a.Date, &a.ShiftTypeCode, &a.Type,
		&a.CreatedAt, &a.UpdatedAt,
		&workerName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, err
	}
	a.WorkerName = &workerName
	return a, nil
}

func (r *assignmentRepositoryImpl) List(ctx context.Context, filter assignment.Filter) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE a.org_id = $1"
	args := []interface{}{filter.OrgID}
	argIndex := 2

	if filter.WorkerID != nil {
		whereClause += fmt.Sprintf(" AND a.worker_id = $%d", argIndex)
		args = append(args, *filter.WorkerID)
		argIndex++
	}
	if filter.DateFrom != nil {
		whereClause += fmt.Sprintf(" AND a.shift_date >= $%d", argIndex)
		args = append(args, *filter.DateFrom)
		argIndex++
	}
	if filter.DateTo != nil {
		whereClause += fmt.Sprintf(" AND a.shift_date <= $%d", argIndex)
		args = append(args, *filter.DateTo)
		argIndex++
	}

	query := `
		SELECT a.id, a.org_id, a.worker_id, a.shift_date, a.shift_type_code, a.assignment_type,
			   a.created_at, a.updated_at,
			   w.full_name as worker_name
		FROM assignments a
		JOIN workers w ON a.worker_id = w.id
		` + whereClause + `
		ORDER BY a.shift_date ASC, a.shift_type_code ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

func (r *assignmentRepositoryImpl) ListByDate(ctx context.Context, orgID string, date time.Time) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.org_id, a.worker_id, a.shift_date, a.shift_type_code, a.assignment_type,
			   a.created_at, a.updated_at,
			   w.full_name as worker_name
		FROM assignments a
		JOIN workers w ON a.worker_id = w.id
		WHERE a.org_id = $1 AND a.shift_date = $2
		ORDER BY a.shift_type_code ASC
	`

	rows, err := q.Query(ctx, query, orgID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

func (r *assignmentRepositoryImpl) ReassignWorker(ctx context.Context, id, newWorkerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assignments
		SET worker_id = $2, assignment_type = $3, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, newWorkerID, assignment.TypeSwapped)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return assignment.ErrAssignmentNotFound
	}
	return nil
}

func scanAssignments(rows pgx.Rows) ([]assignment.Assignment, error) {
	var assignments []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		var workerName string
		err := rows.Scan(
			&a.ID, &a.OrgID, &a.WorkerID, &a.Date, &a.ShiftTypeCode, &a.Type,
			&a.CreatedAt, &a.UpdatedAt,
			&workerName,
		)
		if err != nil {
			return nil, err
		}
		a.WorkerName = &workerName
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
