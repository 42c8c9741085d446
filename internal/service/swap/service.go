package swap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/roster-backend-go/internal/domain/assignment"
	"github.com/shiftwise/roster-backend-go/internal/domain/notification"
	"github.com/shiftwise/roster-backend-go/internal/domain/shift"
	"github.com/shiftwise/roster-backend-go/internal/domain/swap"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
	"github.com/shiftwise/roster-backend-go/internal/pkg/database"
)

// EligibilityEvaluator is the slice of the eligibility service the swap
// engine needs.
type EligibilityEvaluator interface {
	CanWork(ctx context.Context, w worker.Worker, orgID, shiftTypeCode string) (bool, error)
	Registry(ctx context.Context, orgID string) (*shift.EquivalenceRegistry, error)
}

// Notifier delivers best-effort swap activity notices.
type Notifier interface {
	NotifyAll(ctx context.Context, notifications []notification.Notification)
}

type Service struct {
	txRunner       database.TxRunner
	requestRepo    swap.RequestRepository
	offerRepo      swap.OfferRepository
	assignmentRepo assignment.Repository
	workerRepo     worker.Repository
	eligibility    EligibilityEvaluator
	notifier       Notifier
}

func NewSwapService(
	txRunner database.TxRunner,
	requestRepo swap.RequestRepository,
	offerRepo swap.OfferRepository,
	assignmentRepo assignment.Repository,
	workerRepo worker.Repository,
	eligibility EligibilityEvaluator,
	notifier Notifier,
) *Service {
	return &Service{
		txRunner:       txRunner,
		requestRepo:    requestRepo,
		offerRepo:      offerRepo,
		assignmentRepo: assignmentRepo,
		workerRepo:     workerRepo,
		eligibility:    eligibility,
		notifier:       notifier,
	}
}

// canManageSwap is the single capability predicate for swap mutations:
// the requester themself, or an organization admin.
func canManageSwap(caller worker.Caller, requesterID string) bool {
	return caller.WorkerID == requesterID || caller.IsAdmin()
}

func (s *Service) CreateRequest(ctx context.Context, caller worker.Caller, req swap.CreateSwapRequestRequest) (swap.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return swap.RequestResponse{}, err
	}

	source, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return swap.RequestResponse{}, fmt.Errorf("failed to get assignment: %w", err)
	}
	if source.OrgID != caller.OrgID {
		return swap.RequestResponse{}, assignment.ErrAssignmentNotFound
	}
	if !canManageSwap(caller, source.WorkerID) {
		return swap.RequestResponse{}, swap.ErrNotAssignmentOwner
	}

	if _, err := s.requestRepo.GetOpenByAssignment(ctx, req.AssignmentID); err == nil {
		return swap.RequestResponse{}, swap.ErrDuplicateOpenRequest
	} else if err != swap.ErrSwapRequestNotFound {
		return swap.RequestResponse{}, fmt.Errorf("failed to check for open request: %w", err)
	}

	created, err := s.requestRepo.Create(ctx, swap.SwapRequest{
		OrgID:              caller.OrgID,
		RequesterID:        source.WorkerID,
		SourceAssignmentID: source.ID,
		Status:             swap.RequestStatusOpen,
		Notes:              req.Notes,
		EquivalenceCode:    req.EquivalenceCode,
	})
	if err != nil {
		return swap.RequestResponse{}, fmt.Errorf("failed to create swap request: %w", err)
	}

	return swap.ToRequestResponse(created), nil
}

func (s *Service) ListRequests(ctx context.Context, caller worker.Caller, status *swap.RequestStatus, requesterID *string) ([]swap.RequestResponse, error) {
	// Staff only see their own requests; admins may filter freely.
	if !caller.IsAdmin() {
		requesterID = &caller.WorkerID
	}

	requests, err := s.requestRepo.List(ctx, swap.RequestFilter{
		OrgID:       caller.OrgID,
		Status:      status,
		RequesterID: requesterID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list swap requests: %w", err)
	}

	responses := make([]swap.RequestResponse, 0, len(requests))
	for _, req := range requests {
		offers, err := s.offerRepo.ListByRequest(ctx, req.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list offers: %w", err)
		}
		req.Offers = offers
		responses = append(responses, swap.ToRequestResponse(req))
	}
	return responses, nil
}

func (s *Service) GetRequest(ctx context.Context, caller worker.Caller, requestID string) (swap.RequestResponse, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return swap.RequestResponse{}, err
	}
	if req.OrgID != caller.OrgID {
		return swap.RequestResponse{}, swap.ErrSwapRequestNotFound
	}

	offers, err := s.offerRepo.ListByRequest(ctx, req.ID)
	if err != nil {
		return swap.RequestResponse{}, fmt.Errorf("failed to list offers: %w", err)
	}
	req.Offers = offers

	if canManageSwap(caller, req.RequesterID) {
		return swap.ToRequestResponse(req), nil
	}
	for _, o := range offers {
		if o.TargetWorkerID == caller.WorkerID {
			return swap.ToRequestResponse(req), nil
		}
	}
	return swap.RequestResponse{}, swap.ErrSwapRequestNotFound
}

// FindEligiblePartners scans all other assignments on the source date and
// keeps those where the shift types match (or are equivalent under the
// named set) and both workers may legally work each other's shift.
func (s *Service) FindEligiblePartners(ctx context.Context, caller worker.Caller, assignmentID string, equivalenceCode *string) ([]swap.CandidateResponse, error) {
	source, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if source.OrgID != caller.OrgID {
		return nil, assignment.ErrAssignmentNotFound
	}
	if !canManageSwap(caller, source.WorkerID) {
		return nil, swap.ErrNotAssignmentOwner
	}

	requester, err := s.workerRepo.GetByID(ctx, source.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get requester: %w", err)
	}

	var registry *shift.EquivalenceRegistry
	if equivalenceCode != nil {
		registry, err = s.eligibility.Registry(ctx, caller.OrgID)
		if err != nil {
			return nil, err
		}
	}

	sameDay, err := s.assignmentRepo.ListByDate(ctx, caller.OrgID, source.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	var candidates []swap.CandidateResponse
	for _, cand := range sameDay {
		if cand.WorkerID == source.WorkerID {
			continue
		}

		swapType := swap.SwapTypeSameType
		if cand.ShiftTypeCode != source.ShiftTypeCode {
			if registry == nil || !registry.AreEquivalent(cand.ShiftTypeCode, source.ShiftTypeCode, *equivalenceCode) {
				continue
			}
			swapType = swap.SwapTypeEquivalent
		}

		candWorker, err := s.workerRepo.GetByID(ctx, cand.WorkerID)
		if err != nil {
			return nil, fmt.Errorf("failed to get candidate worker: %w", err)
		}

		// Both directions must hold: after the swap each party works the
		// other's shift.
		requesterOK, err := s.eligibility.CanWork(ctx, requester, caller.OrgID, cand.ShiftTypeCode)
		if err != nil {
			return nil, err
		}
		if !requesterOK {
			continue
		}
		candidateOK, err := s.eligibility.CanWork(ctx, candWorker, caller.OrgID, source.ShiftTypeCode)
		if err != nil {
			return nil, err
		}
		if !candidateOK {
			continue
		}

		candidates = append(candidates, swap.ToCandidateResponse(swap.Candidate{
			WorkerID:      cand.WorkerID,
			WorkerName:    cand.WorkerName,
			AssignmentID:  cand.ID,
			ShiftTypeCode: cand.ShiftTypeCode,
			SwapType:      swapType,
		}))
	}
	return candidates, nil
}

// CreateOffers produces one PENDING offer per valid target. Targets that
// fail validation are skipped, not fatal, so one bad entry cannot sink
// the batch.
func (s *Service) CreateOffers(ctx context.Context, caller worker.Caller, req swap.CreateOffersRequest) ([]swap.OfferResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	request, err := s.requestRepo.GetByID(ctx, req.SwapRequestID)
	if err != nil {
		return nil, err
	}
	if request.OrgID != caller.OrgID {
		return nil, swap.ErrSwapRequestNotFound
	}
	if !canManageSwap(caller, request.RequesterID) {
		return nil, swap.ErrNotRequestManager
	}
	if request.Status.Terminal() {
		return nil, swap.ErrSwapRequestClosed
	}

	var offers []swap.SwapOffer
	for _, target := range req.Targets {
		targetWorker, err := s.workerRepo.GetByID(ctx, target.WorkerID)
		if err != nil || targetWorker.OrgID != caller.OrgID {
			slog.Debug("Skipping offer target: unknown worker", "worker_id", target.WorkerID)
			continue
		}

		if target.AssignmentID != nil {
			targetAssignment, err := s.assignmentRepo.GetByID(ctx, *target.AssignmentID)
			if err != nil || targetAssignment.OrgID != caller.OrgID || targetAssignment.WorkerID != target.WorkerID {
				slog.Debug("Skipping offer target: assignment ownership mismatch",
					"worker_id", target.WorkerID, "assignment_id", *target.AssignmentID)
				continue
			}
		}

		offers = append(offers, swap.SwapOffer{
			SwapRequestID:      request.ID,
			TargetWorkerID:     target.WorkerID,
			TargetAssignmentID: target.AssignmentID,
			Status:             swap.OfferStatusPending,
		})
	}

	created, err := s.offerRepo.CreateBatch(ctx, offers)
	if err != nil {
		return nil, fmt.Errorf("failed to create offers: %w", err)
	}

	notifications := make([]notification.Notification, 0, len(created))
	for _, o := range created {
		notifications = append(notifications, notification.Notification{
			OrgID:    caller.OrgID,
			WorkerID: o.TargetWorkerID,
			Kind:     notification.KindOfferReceived,
			Message:  "You have received a shift swap offer",
			RefID:    o.ID,
		})
	}
	s.notifier.NotifyAll(ctx, notifications)

	responses := make([]swap.OfferResponse, 0, len(created))
	for _, o := range created {
		responses = append(responses, swap.ToOfferResponse(o))
	}
	return responses, nil
}

func (s *Service) RespondToOffer(ctx context.Context, caller worker.Caller, req swap.RespondToOfferRequest) (swap.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return swap.RequestResponse{}, err
	}

	offer, err := s.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		return swap.RequestResponse{}, err
	}
	if offer.TargetWorkerID != caller.WorkerID {
		return swap.RequestResponse{}, swap.ErrNotOfferTarget
	}

	request, err := s.requestRepo.GetByID(ctx, offer.SwapRequestID)
	if err != nil {
		return swap.RequestResponse{}, err
	}
	if request.OrgID != caller.OrgID {
		return swap.RequestResponse{}, swap.ErrSwapOfferNotFound
	}

	if req.Decision == swap.DecisionDeclined {
		if err := s.decline(ctx, offer, req.Notes); err != nil {
			return swap.RequestResponse{}, err
		}
	} else {
		if err := s.accept(ctx, caller, offer.ID, req.Notes); err != nil {
			return swap.RequestResponse{}, err
		}
	}

	s.notifyResponse(ctx, request, req.Decision)
	return s.GetRequest(ctx, caller, request.ID)
}

func (s *Service) decline(ctx context.Context, offer swap.SwapOffer, notes *string) error {
	return s.txRunner.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.offerRepo.GetByIDForUpdate(txCtx, offer.ID)
		if err != nil {
			return err
		}
		if locked.Status != swap.OfferStatusPending {
			return swap.ErrOfferAlreadyResponded
		}
		return s.offerRepo.UpdateStatus(txCtx, offer.ID, swap.OfferStatusDeclined, notes)
	})
}

// accept executes the atomic exchange: re-check the offer is still
// PENDING and the request still OPEN, move the assignment(s), close the
// request and cancel sibling offers. Everything commits or nothing does;
// of two concurrent accepts the first committed wins and the loser's
// PENDING re-check fails with a conflict.
func (s *Service) accept(ctx context.Context, caller worker.Caller, offerID string, notes *string) error {
	return s.txRunner.RunInTx(ctx, func(txCtx context.Context) error {
		offer, err := s.offerRepo.GetByIDForUpdate(txCtx, offerID)
		if err != nil {
			return err
		}
		if offer.Status != swap.OfferStatusPending {
			return swap.ErrOfferAlreadyResponded
		}

		request, err := s.requestRepo.GetByID(txCtx, offer.SwapRequestID)
		if err != nil {
			return err
		}
		if request.Status.Terminal() {
			return swap.ErrSwapRequestClosed
		}

		source, err := s.assignmentRepo.GetByID(txCtx, request.SourceAssignmentID)
		if err != nil {
			return err
		}
		if source.WorkerID != request.RequesterID {
			return swap.ErrSourceAssignmentStale
		}

		if offer.TargetAssignmentID != nil {
			// Bilateral: ownership is re-validated here because the target
			// assignment may have been swapped elsewhere since the offer
			// was created.
			target, err := s.assignmentRepo.GetByID(txCtx, *offer.TargetAssignmentID)
			if err != nil {
				return err
			}
			if target.WorkerID != offer.TargetWorkerID {
				return swap.ErrTargetAssignmentStale
			}
			if err := s.assignmentRepo.ReassignWorker(txCtx, source.ID, offer.TargetWorkerID); err != nil {
				return err
			}
			if err := s.assignmentRepo.ReassignWorker(txCtx, target.ID, request.RequesterID); err != nil {
				return err
			}
		} else {
			// Unilateral give-away.
			if err := s.assignmentRepo.ReassignWorker(txCtx, source.ID, offer.TargetWorkerID); err != nil {
				return err
			}
		}

		if err := s.offerRepo.UpdateStatus(txCtx, offer.ID, swap.OfferStatusAccepted, notes); err != nil {
			return err
		}
		if err := s.requestRepo.UpdateStatus(txCtx, request.ID, swap.RequestStatusAccepted); err != nil {
			return err
		}
		return s.offerRepo.CancelPendingSiblings(txCtx, request.ID, offer.ID)
	})
}

func (s *Service) notifyResponse(ctx context.Context, request swap.SwapRequest, decision swap.Decision) {
	kind := notification.KindOfferDeclined
	message := "Your shift swap offer was declined"
	if decision == swap.DecisionAccepted {
		kind = notification.KindOfferAccepted
		message = "Your shift swap offer was accepted"
	}
	s.notifier.NotifyAll(ctx, []notification.Notification{{
		OrgID:    request.OrgID,
		WorkerID: request.RequesterID,
		Kind:     kind,
		Message:  message,
		RefID:    request.ID,
	}})
}

func (s *Service) Cancel(ctx context.Context, caller worker.Caller, requestID string) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.OrgID != caller.OrgID {
		return swap.ErrSwapRequestNotFound
	}
	if !canManageSwap(caller, request.RequesterID) {
		return swap.ErrNotRequestManager
	}

	return s.txRunner.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.requestRepo.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if current.Status.Terminal() {
			return swap.ErrSwapRequestClosed
		}
		if err := s.requestRepo.UpdateStatus(txCtx, requestID, swap.RequestStatusCancelled); err != nil {
			return err
		}
		return s.offerRepo.CancelPendingSiblings(txCtx, requestID, "")
	})
}

// ExpireStale closes OPEN requests created before now-maxAge. Run from
// the cron scheduler.
func (s *Service) ExpireStale(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	stale, err := s.requestRepo.ListOpenOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale requests: %w", err)
	}

	expired := 0
	for _, request := range stale {
		err := s.txRunner.RunInTx(ctx, func(txCtx context.Context) error {
			current, err := s.requestRepo.GetByID(txCtx, request.ID)
			if err != nil {
				return err
			}
			if current.Status.Terminal() {
				return nil
			}
			if err := s.requestRepo.UpdateStatus(txCtx, request.ID, swap.RequestStatusExpired); err != nil {
				return err
			}
			return s.offerRepo.CancelPendingSiblings(txCtx, request.ID, "")
		})
		if err != nil {
			slog.Error("Failed to expire swap request", "request_id", request.ID, "error", err)
			continue
		}
		expired++

		s.notifier.NotifyAll(ctx, []notification.Notification{{
			OrgID:    request.OrgID,
			WorkerID: request.RequesterID,
			Kind:     notification.KindRequestExpired,
			Message:  "Your shift swap request expired without being accepted",
			RefID:    request.ID,
		}})
	}
	return expired, nil
}
