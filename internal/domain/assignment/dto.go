package assignment

import (
	"time"

	"github.com/shiftwise/roster-backend-go/internal/pkg/validator"
)

// Filter narrows assignment listings. Zero-value fields are ignored.
type Filter struct {
	OrgID    string
	WorkerID *string
	DateFrom *time.Time
	DateTo   *time.Time
}

type CreateAssignmentRequest struct {
	WorkerID      string `json:"worker_id"`
	Date          string `json:"date"`
	ShiftTypeCode string `json:"shift_type_code"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.ShiftTypeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type_code",
			Message: "shift_type_code is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID            string  `json:"assignment_id"`
	WorkerID      string  `json:"worker_id"`
	WorkerName    *string `json:"worker_name,omitempty"`
	Date          string  `json:"date"`
	ShiftTypeCode string  `json:"shift_type_code"`
	Type          Type    `json:"assignment_type"`
}

func ToResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:            a.ID,
		WorkerID:      a.WorkerID,
		WorkerName:    a.WorkerName,
		Date:          a.Date.Format("2006-01-02"),
		ShiftTypeCode: a.ShiftTypeCode,
		Type:          a.Type,
	}
}
