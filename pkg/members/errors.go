package members

import "errors"

var (
	// ErrUnauthenticated means no authenticated user was presented
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnauthorized means the acting user's role does not allow the operation
	ErrUnauthorized = errors.New("permission denied")

	// ErrInvalidRole means the requested role is not part of the role catalog
	ErrInvalidRole = errors.New("invalid role")

	// ErrNotFound means the member does not exist
	ErrNotFound = errors.New("member not found")

	// ErrNotActive means the member is not in the active state
	ErrNotActive = errors.New("member is not active")
)
