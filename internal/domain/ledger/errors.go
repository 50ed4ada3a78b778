package ledger

import "errors"

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrUnknownEventType = errors.New("unknown lifecycle event type")
)
