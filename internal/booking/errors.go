package booking

import "errors"

var (
	// ErrInvalidTransition is returned when an action is not allowed in the current step
	ErrInvalidTransition = errors.New("booking: action not allowed in current step")

	// ErrSessionNotFound is returned when a wizard session has expired or was closed
	ErrSessionNotFound = errors.New("booking: session not found")
)
