package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftwise/roster-backend-go/internal/domain/assignment"
	"github.com/shiftwise/roster-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/roster-backend-go/internal/handler/http/response"
)

type AssignmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService assignment.Service
}

func NewAssignmentHandler(assignmentService assignment.Service) AssignmentHandler {
	return &assignmentHandlerImpl{assignmentService: assignmentService}
}

// Create adds a manual assignment. Admin only, enforced by middleware
// and re-checked in the service.
func (h *assignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req assignment.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create assignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.assignmentService.Create(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignment created successfully", created)
}

func (h *assignmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	assignments, err := h.assignmentService.List(r.Context(), caller,
		getStringQueryParam(r, "date_from"),
		getStringQueryParam(r, "date_to"),
		getStringQueryParam(r, "worker_id"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}

func (h *assignmentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	assignments, err := h.assignmentService.ListMine(r.Context(), caller,
		getStringQueryParam(r, "date_from"),
		getStringQueryParam(r, "date_to"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}
