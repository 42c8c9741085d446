package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shiftwise/roster-backend-go/internal/domain/preference"
	"github.com/shiftwise/roster-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/roster-backend-go/internal/handler/http/response"
)

type PreferenceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListForOrg(w http.ResponseWriter, r *http.Request)
}

type preferenceHandlerImpl struct {
	preferenceService preference.Service
}

func NewPreferenceHandler(preferenceService preference.Service) PreferenceHandler {
	return &preferenceHandlerImpl{preferenceService: preferenceService}
}

// Submit replaces the caller's ranked vacation weeks for one period.
func (h *preferenceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req preference.SubmitPreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit preferences decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Staff submit for themselves; the worker_id field is for admins.
	if req.WorkerID == "" {
		req.WorkerID = caller.WorkerID
	}

	created, err := h.preferenceService.Submit(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Preferences submitted successfully", created)
}

func (h *preferenceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := time.Now()
	year := getIntQueryParam(r, "year", now.Year())
	month := getIntQueryParam(r, "month", int(now.Month()))

	prefs, err := h.preferenceService.ListMine(r.Context(), caller, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, prefs)
}

func (h *preferenceHandlerImpl) ListForOrg(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := time.Now()
	year := getIntQueryParam(r, "year", now.Year())
	month := getIntQueryParam(r, "month", int(now.Month()))

	prefs, err := h.preferenceService.ListForOrg(r.Context(), caller, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, prefs)
}
