package swap

import (
	"strconv"

	"github.com/shiftwise/roster-backend-go/internal/pkg/validator"
)

type CreateSwapRequestRequest struct {
	AssignmentID    string  `json:"assignment_id"`
	Notes           string  `json:"notes,omitempty"`
	EquivalenceCode *string `json:"equivalence_code,omitempty"`
}

func (r *CreateSwapRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignment_id",
			Message: "assignment_id is required",
		})
	}

	if len(r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OfferTarget struct {
	WorkerID     string  `json:"worker_id"`
	AssignmentID *string `json:"assignment_id,omitempty"`
}

type CreateOffersRequest struct {
	SwapRequestID string        `json:"swap_request_id"`
	Targets       []OfferTarget `json:"targets"`
}

func (r *CreateOffersRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SwapRequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "swap_request_id",
			Message: "swap_request_id is required",
		})
	}

	if len(r.Targets) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "targets",
			Message: "at least one target is required",
		})
	}

	for i, target := range r.Targets {
		if validator.IsEmpty(target.WorkerID) {
			errs = append(errs, validator.ValidationError{
				Field:   "targets[" + strconv.Itoa(i) + "].worker_id",
				Message: "worker_id is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Decision string

const (
	DecisionAccepted Decision = "ACCEPTED"
	DecisionDeclined Decision = "DECLINED"
)

type RespondToOfferRequest struct {
	OfferID  string   `json:"offer_id"`
	Decision Decision `json:"decision"`
	Notes    *string  `json:"notes,omitempty"`
}

func (r *RespondToOfferRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OfferID) {
		errs = append(errs, validator.ValidationError{
			Field:   "offer_id",
			Message: "offer_id is required",
		})
	}

	if r.Decision != DecisionAccepted && r.Decision != DecisionDeclined {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be ACCEPTED or DECLINED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RequestFilter narrows swap request listings. Nil fields are ignored.
type RequestFilter struct {
	OrgID       string
	Status      *RequestStatus
	RequesterID *string
}

type CandidateResponse struct {
	WorkerID      string   `json:"worker_id"`
	WorkerName    *string  `json:"worker_name,omitempty"`
	AssignmentID  string   `json:"assignment_id"`
	ShiftTypeCode string   `json:"shift_type_code"`
	SwapType      SwapType `json:"swap_type"`
}

func ToCandidateResponse(c Candidate) CandidateResponse {
	return CandidateResponse{
		WorkerID:      c.WorkerID,
		WorkerName:    c.WorkerName,
		AssignmentID:  c.AssignmentID,
		ShiftTypeCode: c.ShiftTypeCode,
		SwapType:      c.SwapType,
	}
}

type OfferResponse struct {
	ID                 string      `json:"offer_id"`
	SwapRequestID      string      `json:"swap_request_id"`
	TargetWorkerID     string      `json:"target_worker_id"`
	TargetAssignmentID *string     `json:"target_assignment_id,omitempty"`
	Status             OfferStatus `json:"status"`
	ResponseNotes      *string     `json:"response_notes,omitempty"`
}

type RequestResponse struct {
	ID                 string          `json:"swap_request_id"`
	RequesterID        string          `json:"requester_id"`
	RequesterName      *string         `json:"requester_name,omitempty"`
	SourceAssignmentID string          `json:"source_assignment_id"`
	Status             RequestStatus   `json:"status"`
	Notes              string          `json:"notes,omitempty"`
	EquivalenceCode    *string         `json:"equivalence_code,omitempty"`
	Offers             []OfferResponse `json:"offers,omitempty"`
}

func ToOfferResponse(o SwapOffer) OfferResponse {
	return OfferResponse{
		ID:                 o.ID,
		SwapRequestID:      o.SwapRequestID,
		TargetWorkerID:     o.TargetWorkerID,
		TargetAssignmentID: o.TargetAssignmentID,
		Status:             o.Status,
		ResponseNotes:      o.ResponseNotes,
	}
}

func ToRequestResponse(r SwapRequest) RequestResponse {
	resp := RequestResponse{
		ID:                 r.ID,
		RequesterID:        r.RequesterID,
		RequesterName:      r.RequesterName,
		SourceAssignmentID: r.SourceAssignmentID,
		Status:             r.Status,
		Notes:              r.Notes,
		EquivalenceCode:    r.EquivalenceCode,
	}
	for _, o := range r.Offers {
		resp.Offers = append(resp.Offers, ToOfferResponse(o))
	}
	return resp
}
