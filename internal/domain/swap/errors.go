package swap

import "errors"

var (
	ErrSwapRequestNotFound = errors.New("Swap request not found")
	ErrSwapOfferNotFound   = errors.New("Swap offer not found")

	// Conflict family: the caller should refresh state and retry.
	ErrDuplicateOpenRequest  = errors.New("An open swap request already exists for this assignment")
	ErrOfferAlreadyResponded = errors.New("Swap offer is no longer pending")
	ErrSwapRequestClosed     = errors.New("Swap request is no longer open")
	ErrSourceAssignmentStale = errors.New("Source assignment no longer belongs to the requester")
	ErrTargetAssignmentStale = errors.New("Target assignment no longer belongs to the offer target")

	// Forbidden family.
	ErrNotAssignmentOwner = errors.New("Assignment does not belong to the requester")
	ErrNotOfferTarget     = errors.New("Swap offer is not addressed to this worker")
	ErrNotRequestManager  = errors.New("Caller may not manage this swap request")
)
