package domain

import "errors"

// Sentinel errors shared across services and repositories. Anything a
// repository returns that does not match one of these is treated as a
// storage-level failure by callers.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
	ErrInvalidInput   = errors.New("invalid input")
)
