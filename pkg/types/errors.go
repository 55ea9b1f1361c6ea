package types

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrOpportunityNotFound  = errors.New("opportunity not found")
	ErrDuplicateApplication = errors.New("user already applied to this opportunity")
	ErrInvalidInput         = errors.New("invalid input")

	// ErrStorageCorruption means a persisted collection could not be decoded
	// into its expected shape. It is not recoverable locally.
	ErrStorageCorruption = errors.New("storage corruption")
)
