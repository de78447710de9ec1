package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Notify errors
	ErrRateLimited      = errors.New("notify rejected by active cooldown")
	ErrStoreUnavailable = errors.New("backing store unavailable")

	// Validation errors
	ErrInvalidLocation = errors.New("invalid location")
	ErrMessageTooLong  = errors.New("message too long")
)
