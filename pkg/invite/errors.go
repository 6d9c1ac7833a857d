package invite

import "errors"

var (
	// ErrUnauthenticated means no authenticated user was presented
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnauthorized means the acting user's role does not allow the operation
	ErrUnauthorized = errors.New("permission denied")

	// ErrInvalidEmail means the invited address failed syntax validation
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidRole means the invited role is not part of the role catalog
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidOrExpired means the token resolves to no usable invitation.
	// Unknown tokens, non-pending invitations, and expired invitations all
	// collapse into this one error so callers can't probe token state.
	ErrInvalidOrExpired = errors.New("invitation is invalid or has expired")

	// ErrDuplicate means a pending invitation for that email already exists
	ErrDuplicate = errors.New("an invitation for this email is already pending")

	// ErrAlreadyMember means the invited email already belongs to the organization
	ErrAlreadyMember = errors.New("user is already a member of this organization")

	// ErrNotPending means the invitation is not in the pending state
	ErrNotPending = errors.New("invitation is not pending")
)
