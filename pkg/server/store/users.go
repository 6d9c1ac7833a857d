package store

import "github.com/breeqa/breeqa-server/pkg/model"

// UsersStore abstracts user profile storage.
type UsersStore interface {
	// FetchProfile retrieves a profile by user id, or ErrNotFound.
	FetchProfile(userID string) (*model.UserProfile, error)

	// FetchByEmail retrieves a profile by email, or ErrNotFound.
	FetchByEmail(email string) (*model.UserProfile, error)

	// UpsertProfile creates or updates a profile.
	UpsertProfile(profile *model.UserProfile) error
}
