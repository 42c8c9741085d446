package swap

import "time"

type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "OPEN"
	RequestStatusAccepted  RequestStatus = "ACCEPTED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
	RequestStatusExpired   RequestStatus = "EXPIRED"
)

func (s RequestStatus) Terminal() bool {
	return s != RequestStatusOpen
}

type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "PENDING"
	OfferStatusAccepted  OfferStatus = "ACCEPTED"
	OfferStatusDeclined  OfferStatus = "DECLINED"
	OfferStatusCancelled OfferStatus = "CANCELLED"
)

// SwapRequest entity. At most one OPEN request may exist per source
// assignment at a time.
type SwapRequest struct {
	ID    string
	OrgID string

	RequesterID        string
	SourceAssignmentID string

	Status          RequestStatus
	Notes           string
	EquivalenceCode *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	RequesterName *string
	Offers        []SwapOffer
}

// SwapOffer entity. A nil TargetAssignmentID is a unilateral give-away
// proposal; a non-nil one proposes a bilateral exchange.
type SwapOffer struct {
	ID            string
	SwapRequestID string

	TargetWorkerID     string
	TargetAssignmentID *string

	Status        OfferStatus
	ResponseNotes *string
	RespondedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type SwapType string

const (
	SwapTypeSameType   SwapType = "SAME_TYPE"
	SwapTypeEquivalent SwapType = "EQUIVALENT"
)

// Candidate is one eligible swap partner found for a source assignment.
type Candidate struct {
	WorkerID      string
	WorkerName    *string
	AssignmentID  string
	ShiftTypeCode string
	SwapType      SwapType
}
