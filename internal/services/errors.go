package services

import "errors"

// Validation failures are the only error class surfaced to callers as hard
// errors; generation-path failures degrade to fallbacks instead.
var (
	ErrInvalidDate  = errors.New("date must be formatted as YYYY-MM-DD")
	ErrEmptyMessage = errors.New("message cannot be empty")
)
