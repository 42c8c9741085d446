package swap

import (
	"context"
	"time"
)

// RequestRepository - interface for the swap_requests table
type RequestRepository interface {
	Create(ctx context.Context, req SwapRequest) (SwapRequest, error)
	GetByID(ctx context.Context, id string) (SwapRequest, error)
	// GetOpenByAssignment returns the OPEN request for the assignment, or
	// ErrSwapRequestNotFound.
	GetOpenByAssignment(ctx context.Context, assignmentID string) (SwapRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]SwapRequest, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus) error
	// ListOpenOlderThan returns OPEN requests created before the cutoff,
	// for the expiry job.
	ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]SwapRequest, error)
}

// OfferRepository - interface for the swap_offers table
type OfferRepository interface {
	CreateBatch(ctx context.Context, offers []SwapOffer) ([]SwapOffer, error)
	GetByID(ctx context.Context, id string) (SwapOffer, error)
	// GetByIDForUpdate locks the offer row for the rest of the enclosing
	// transaction. The accept path uses it to serialize concurrent responses.
	GetByIDForUpdate(ctx context.Context, id string) (SwapOffer, error)
	ListByRequest(ctx context.Context, swapRequestID string) ([]SwapOffer, error)
	UpdateStatus(ctx context.Context, id string, status OfferStatus, notes *string) error
	// CancelPendingSiblings cancels every PENDING offer of the request
	// except the given one.
	CancelPendingSiblings(ctx context.Context, swapRequestID, exceptOfferID string) error
}
