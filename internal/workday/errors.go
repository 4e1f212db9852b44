package workday

import "errors"

var (
	// ErrInvalidDateFormat is returned when a date string does not match the pattern.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidRange is returned when no day is left between start and end
	// once both endpoints are excluded.
	ErrInvalidRange = errors.New("invalid range")
)
