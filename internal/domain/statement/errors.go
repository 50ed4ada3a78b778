package statement

import "errors"

var (
	ErrStatementNotFound = errors.New("statement not found")
	ErrInvalidPeriod     = errors.New("invalid statement period")
)
