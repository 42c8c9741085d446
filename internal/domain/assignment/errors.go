package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("Assignment not found")
	ErrDuplicateSlot      = errors.New("Worker already assigned to this shift on this date")
)
