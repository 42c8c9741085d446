package shift

import "errors"

var (
	ErrShiftTypeNotFound = errors.New("Shift type not found")
)
