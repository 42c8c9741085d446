package swap

import (
	"context"
	"time"

	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
)

type Service interface {
	CreateRequest(ctx context.Context, caller worker.Caller, req CreateSwapRequestRequest) (RequestResponse, error)
	ListRequests(ctx context.Context, caller worker.Caller, status *RequestStatus, requesterID *string) ([]RequestResponse, error)
	GetRequest(ctx context.Context, caller worker.Caller, requestID string) (RequestResponse, error)
	FindEligiblePartners(ctx context.Context, caller worker.Caller, assignmentID string, equivalenceCode *string) ([]CandidateResponse, error)
	CreateOffers(ctx context.Context, caller worker.Caller, req CreateOffersRequest) ([]OfferResponse, error)
	RespondToOffer(ctx context.Context, caller worker.Caller, req RespondToOfferRequest) (RequestResponse, error)
	Cancel(ctx context.Context, caller worker.Caller, requestID string) error
	// ExpireStale closes OPEN requests older than maxAge. Run by the cron
	// scheduler, not exposed over HTTP.
	ExpireStale(ctx context.Context, maxAge time.Duration) (int, error)
}
