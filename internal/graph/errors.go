package graph

import (
	"errors"

	"github.com/bleep241/event-booker/internal/domain"
)

// Error codes surfaced in the extensions of response errors.
const (
	codeBadUserInput = "BAD_USER_INPUT"
	codeNotFound     = "NOT_FOUND"
	codeDuplicate    = "DUPLICATE"
	codeInternal     = "INTERNAL"
)

// errorCode classifies an error from the services or loaders. Anything not
// matching a domain sentinel is a storage-level failure.
func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return codeBadUserInput
	case errors.Is(err, domain.ErrDuplicateEmail):
		return codeDuplicate
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return codeNotFound
	default:
		return codeInternal
	}
}
