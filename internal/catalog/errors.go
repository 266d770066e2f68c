package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when a service id is not on the menu
	ErrServiceNotFound = errors.New("service not found")
)
