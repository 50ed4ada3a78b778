package calculation

import "errors"

var (
	ErrCalculationNotFound = errors.New("yearly calculation not found")
	// ErrMissingBirthDate surfaces a member record with no birth date.
	// The calculation fails loudly rather than guessing a bracket.
	ErrMissingBirthDate = errors.New("member is missing a birth date")
)
