package preference

import "errors"

var (
	ErrPreferenceNotFound = errors.New("Vacation preference not found")
	ErrInvalidPeriod      = errors.New("Invalid year or month")
)
