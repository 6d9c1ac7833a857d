package store

import "errors"

var (
	// ErrNotFound indicates the referenced record does not exist (or,
	// for conditional transitions, was not in the expected state).
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a uniqueness constraint rejected the write.
	ErrDuplicate = errors.New("record already exists")

	// ErrAlreadyMember indicates the user already holds an active
	// membership in the organization.
	ErrAlreadyMember = errors.New("user is already a member")
)
