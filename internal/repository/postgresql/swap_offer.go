package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/roster-backend-go/internal/domain/swap"
	"github.com/shiftwise/roster-backend-go/internal/pkg/database"
)

type swapOfferRepositoryImpl struct {
	db *database.DB
}

func NewSwapOfferRepository(db *database.DB) swap.OfferRepository {
	return &swapOfferRepositoryImpl{db: db}
}

func (r *swapOfferRepositoryImpl) CreateBatch(ctx context.Context, offers []swap.SwapOffer) ([]swap.SwapOffer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO swap_offers (
			id, swap_request_id, target_worker_id, target_assignment_id,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	created := make([]swap.SwapOffer, 0, len(offers))
	for _, o := range offers {
		err := q.QueryRow(ctx, query,
			o.SwapRequestID, o.TargetWorkerID, o.TargetAssignmentID, o.Status,
		).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, err
		}
		created = append(created, o)
	}
	return created, nil
}

const swapOfferColumns = `
	so.id, so.swap_request_id, so.target_worker_id, so.target_assignment_id,
	so.status, so.response_notes, so.responded_at,
	so.created_at, so.updated_at
`

func scanSwapOffer(row pgx.Row) (swap.SwapOffer, error) {
	var o swap.SwapOffer
	err := row.Scan(
		&o.ID, &o.SwapRequestID, &o.TargetWorkerID, &o.TargetAssignmentID,
		&o.Status, &o.ResponseNotes, &o.RespondedAt,
		&o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (r *swapOfferRepositoryImpl) GetByID(ctx context.Context, id string) (swap.SwapOffer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + swapOfferColumns + ` FROM swap_offers so WHERE so.id = $1`

	o, err := scanSwapOffer(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return swap.SwapOffer{}, swap.ErrSwapOfferNotFound
		}
		return swap.SwapOffer{}, err
	}
	return o, nil
}

func (r *swapOfferRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (swap.SwapOffer, error) {
	q := GetQuerier(ctx, r.db)

	// Row lock serializes concurrent accepts of offers under one request.
	query := `SELECT ` + swapOfferColumns + ` FROM swap_offers so WHERE so.id = $1 FOR UPDATE`

	o, err := scanSwapOffer(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return swap.SwapOffer{}, swap.ErrSwapOfferNotFound
		}
		return swap.SwapOffer{}, err
	}
	return o, nil
}

func (r *swapOfferRepositoryImpl) ListByRequest(ctx context.Context, swapRequestID string) ([]swap.SwapOffer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + swapOfferColumns + `
		FROM swap_offers so
		WHERE so.swap_request_id = $1
		ORDER BY so.created_at ASC
	`

	rows, err := q.Query(ctx, query, swapRequestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []swap.SwapOffer
	for rows.Next() {
		o, err := scanSwapOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *swapOfferRepositoryImpl) UpdateStatus(ctx context.Context, id string, status swap.OfferStatus, notes *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE swap_offers
		SET status = $2, response_notes = COALESCE($3, response_notes),
			responded_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, notes)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return swap.ErrSwapOfferNotFound
	}
	return nil
}

func (r *swapOfferRepositoryImpl) CancelPendingSiblings(ctx context.Context, swapRequestID, exceptOfferID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE swap_offers
		SET status = $3, updated_at = NOW()
		WHERE swap_request_id = $1 AND id <> $2 AND status = $4
	`

	_, err := q.Exec(ctx, query, swapRequestID, exceptOfferID, swap.OfferStatusCancelled, swap.OfferStatusPending)
	return err
}
