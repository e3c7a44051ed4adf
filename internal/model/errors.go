package model

import "errors"

// Run-level error kinds. Callers wrap these with the offending field so a
// fatal error always names what caused it, e.g.
// fmt.Errorf("locale %q: %w", code, model.ErrUnsupportedLocale).
var (
	// ErrInvalidInput: neither brief nor structured input supplied, or the
	// structured input is not a well-formed mapping of row lists
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedLocale: explicit locale code outside the supported set
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrInvalidRubric: non-positive weight or unknown dimension in an override
	ErrInvalidRubric = errors.New("invalid rubric")

	// ErrInsufficientData: structured competitor rows were supplied but none
	// survived normalization
	ErrInsufficientData = errors.New("insufficient data")
)
