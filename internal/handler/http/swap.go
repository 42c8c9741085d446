package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwise/roster-backend-go/internal/domain/swap"
	"github.com/shiftwise/roster-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/roster-backend-go/internal/handler/http/response"
)

type SwapHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
	FindEligiblePartners(w http.ResponseWriter, r *http.Request)
	CreateOffers(w http.ResponseWriter, r *http.Request)
	RespondToOffer(w http.ResponseWriter, r *http.Request)
}

type swapHandlerImpl struct {
	swapService swap.Service
}

func NewSwapHandler(swapService swap.Service) SwapHandler {
	return &swapHandlerImpl{swapService: swapService}
}

// CreateRequest opens a swap request for one of the caller's assignments.
func (h *swapHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req swap.CreateSwapRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create swap request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.swapService.CreateRequest(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Swap request created successfully", created)
}

func (h *swapHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var status *swap.RequestStatus
	if s := getStringQueryParam(r, "status"); s != nil {
		st := swap.RequestStatus(*s)
		status = &st
	}

	requests, err := h.swapService.ListRequests(r.Context(), caller, status, getStringQueryParam(r, "requester_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *swapHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Swap request ID is required", nil)
		return
	}

	request, err := h.swapService.GetRequest(r.Context(), caller, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

func (h *swapHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Swap request ID is required", nil)
		return
	}

	if err := h.swapService.Cancel(r.Context(), caller, requestID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Swap request cancelled", nil)
}

// FindEligiblePartners lists workers on the same date the caller could
// legally swap with.
func (h *swapHandlerImpl) FindEligiblePartners(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	assignmentID := getStringQueryParam(r, "assignment_id")
	if assignmentID == nil {
		response.BadRequest(w, "assignment_id is required", nil)
		return
	}

	candidates, err := h.swapService.FindEligiblePartners(r.Context(), caller, *assignmentID,
		getStringQueryParam(r, "equivalence_code"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, candidates)
}

func (h *swapHandlerImpl) CreateOffers(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req swap.CreateOffersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create offers decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.SwapRequestID == "" {
		req.SwapRequestID = chi.URLParam(r, "id")
	}

	offers, err := h.swapService.CreateOffers(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Offers created successfully", offers)
}

func (h *swapHandlerImpl) RespondToOffer(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req swap.RespondToOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Respond to offer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.OfferID == "" {
		req.OfferID = chi.URLParam(r, "id")
	}

	request, err := h.swapService.RespondToOffer(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Offer response recorded", request)
}
