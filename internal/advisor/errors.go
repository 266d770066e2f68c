package advisor

import "errors"

var (
	// ErrConcernRequired is returned when the consultation form has no concern text
	ErrConcernRequired = errors.New("advisor: concern is required")

	// ErrInvalidSkinType is returned for skin profiles the form does not offer
	ErrInvalidSkinType = errors.New("advisor: unknown skin type")

	// ErrEmptyInsights is returned when the model produced no area description
	ErrEmptyInsights = errors.New("advisor: model returned no location insights")
)
