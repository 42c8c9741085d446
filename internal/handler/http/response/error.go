package response

import (
	"errors"
	"net/http"

	"github.com/shiftwise/roster-backend-go/internal/domain/assignment"
	"github.com/shiftwise/roster-backend-go/internal/domain/notification"
	"github.com/shiftwise/roster-backend-go/internal/domain/preference"
	"github.com/shiftwise/roster-backend-go/internal/domain/shift"
	"github.com/shiftwise/roster-backend-go/internal/domain/swap"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
	"github.com/shiftwise/roster-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Worker domain errors
	switch {
	case errors.Is(err, worker.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerInactive):
		Forbidden(w, "Worker is inactive")
	case errors.Is(err, worker.ErrForbidden):
		Forbidden(w, err.Error())
	case errors.Is(err, worker.ErrAdminRequired):
		Forbidden(w, "Administrator privilege required")

	// Shift and assignment domain errors
	case errors.Is(err, shift.ErrShiftTypeNotFound):
		NotFound(w, "Shift type not found")
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrDuplicateSlot):
		Conflict(w, "Worker already assigned to this shift on this date")

	// Preference domain errors
	case errors.Is(err, preference.ErrPreferenceNotFound):
		NotFound(w, "Vacation preference not found")
	case errors.Is(err, preference.ErrInvalidPeriod):
		BadRequest(w, "Invalid year or month", nil)

	// Swap domain errors. The conflict family means a concurrent actor
	// got there first: the client should refresh and retry.
	case errors.Is(err, swap.ErrSwapRequestNotFound):
		NotFound(w, "Swap request not found")
	case errors.Is(err, swap.ErrSwapOfferNotFound):
		NotFound(w, "Swap offer not found")
	case errors.Is(err, swap.ErrDuplicateOpenRequest):
		Conflict(w, "An open swap request already exists for this assignment")
	case errors.Is(err, swap.ErrOfferAlreadyResponded):
		Conflict(w, "Swap offer is no longer pending")
	case errors.Is(err, swap.ErrSwapRequestClosed):
		Conflict(w, "Swap request is no longer open")
	case errors.Is(err, swap.ErrSourceAssignmentStale):
		Conflict(w, "Source assignment no longer belongs to the requester")
	case errors.Is(err, swap.ErrTargetAssignmentStale):
		Conflict(w, "Target assignment no longer belongs to the offer target")
	case errors.Is(err, swap.ErrNotAssignmentOwner):
		Forbidden(w, "Assignment does not belong to you")
	case errors.Is(err, swap.ErrNotOfferTarget):
		Forbidden(w, "Swap offer is not addressed to you")
	case errors.Is(err, swap.ErrNotRequestManager):
		Forbidden(w, "You may not manage this swap request")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
