package store

import "github.com/breeqa/breeqa-server/pkg/model"

// OrganizationsStore abstracts organization storage.
type OrganizationsStore interface {
	// Create persists the organization and, in the same transaction,
	// makes the creator an active admin member.
	Create(org *model.Organization, creatorID string) error

	// Fetch retrieves an organization by id, or ErrNotFound.
	Fetch(orgID string) (*model.Organization, error)

	// FetchBySlug retrieves an organization by slug, or ErrNotFound.
	FetchBySlug(slug string) (*model.Organization, error)

	// ListForUser returns the organizations where the user has an
	// active membership.
	ListForUser(userID string) ([]model.Organization, error)
}
