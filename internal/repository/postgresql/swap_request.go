package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/roster-backend-go/internal/domain/swap"
	"github.com/shiftwise/roster-backend-go/internal/pkg/database"
)

type swapRequestRepositoryImpl struct {
	db *database.DB
}

func NewSwapRequestRepository(db *database.DB) swap.RequestRepository {
	return &swapRequestRepositoryImpl{db: db}
}

func (r *swapRequestRepositoryImpl) Create(ctx context.Context, req swap.SwapRequest) (swap.SwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO swap_requests (
			id, org_id, requester_id, source_assignment_id,
			status, notes, equivalence_code,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.OrgID, req.RequesterID, req.SourceAssignmentID,
		req.Status, req.Notes, req.EquivalenceCode,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		// Partial unique index on (source_assignment_id) WHERE status = 'OPEN'
		if IsUniqueViolation(err, "swap_requests_open_source_key") {
			return swap.SwapRequest{}, swap.ErrDuplicateOpenRequest
		}
		return swap.SwapRequest{}, err
	}

	return req, nil
}

const swapRequestColumns = `
	sr.id, sr.org_id, sr.requester_id, sr.source_assignment_id,
	sr.status, sr.notes, sr.equivalence_code,
	sr.created_at, sr.updated_at,
	w.full_name as requester_name
`

func scanSwapRequest(row pgx.Row) (swap.SwapRequest, error) {
	var req swap.SwapRequest
	var requesterName string
	err := row.Scan(
		&req.ID, &req.OrgID, &req.RequesterID, &req.SourceAssignmentID,
		&req.Status, &req.Notes, &req.EquivalenceCode,
		&req.CreatedAt, &req.UpdatedAt,
		&requesterName,
	)
	if err != nil {
		return swap.SwapRequest{}, err
	}
	req.RequesterName = &requesterName
	return req, nil
}

func (r *swapRequestRepositoryImpl) GetByID(ctx context.Context, id string) (swap.SwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + swapRequestColumns + `
		FROM swap_requests sr
		JOIN workers w ON sr.requester_id = w.id
		WHERE sr.id = $1
	`

	req, err := scanSwapRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return swap.SwapRequest{}, swap.ErrSwapRequestNotFound
		}
		return swap.SwapRequest{}, err
	}
	return req, nil
}

func (r *swapRequestRepositoryImpl) GetOpenByAssignment(ctx context.Context, assignmentID string) (swap.SwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + swapRequestColumns + `
		FROM swap_requests sr
		JOIN workers w ON sr.requester_id = w.id
		WHERE sr.source_assignment_id = $1 AND sr.status = $2
	`

	req, err := scanSwapRequest(q.QueryRow(ctx, query, assignmentID, swap.RequestStatusOpen))
	if err != nil {
		if err == pgx.ErrNoRows {
			return swap.SwapRequest{}, swap.ErrSwapRequestNotFound
		}
		return swap.SwapRequest{}, err
	}
	return req, nil
}

func (r *swapRequestRepositoryImpl) List(ctx context.Context, filter swap.RequestFilter) ([]swap.SwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE sr.org_id = $1"
	args := []interface{}{filter.OrgID}
	argIndex := 2

	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND sr.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.RequesterID != nil {
		whereClause += fmt.Sprintf(" AND sr.requester_id = $%d", argIndex)
		args = append(args, *filter.RequesterID)
		argIndex++
	}

	query := `
		SELECT ` + swapRequestColumns + `
		FROM swap_requests sr
		JOIN workers w ON sr.requester_id = w.id
		` + whereClause + `
		ORDER BY sr.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []swap.SwapRequest
	for rows.Next() {
		req, err := scanSwapRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *swapRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status swap.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE swap_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return swap.ErrSwapRequestNotFound
	}
	return nil
}

func (r *swapRequestRepositoryImpl) ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]swap.SwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + swapRequestColumns + `
		FROM swap_requests sr
		JOIN workers w ON sr.requester_id = w.id
		WHERE sr.status = $1 AND sr.created_at < $2
		ORDER BY sr.created_at ASC
	`

	rows, err := q.Query(ctx, query, swap.RequestStatusOpen, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []swap.SwapRequest
	for rows.Next() {
		req, err := scanSwapRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
