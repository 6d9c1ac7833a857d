package store

import (
	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
)

// MembershipsStore abstracts organization membership storage.
//
// ResolveRole is the membership resolver every authorization decision
// goes through. It must be queried fresh per decision: role changes take
// effect immediately, so no caching is permitted here.
type MembershipsStore interface {
	// ResolveRole returns the role of the user's active membership in
	// the organization, or nil if no active membership exists. Pending
	// and suspended memberships never yield a role.
	ResolveRole(userID, orgID string) (*rbac.Role, error)

	// FetchMember retrieves a membership regardless of status.
	FetchMember(orgID, userID string) (*model.OrganizationMember, error)

	// ListMembers returns memberships of an organization, active only
	// unless includeInactive is set. Profiles are joined in.
	ListMembers(orgID string, includeInactive bool) ([]model.OrganizationMember, error)

	// SetRole overwrites the member's role. Status is untouched.
	SetRole(orgID, userID string, role rbac.Role) error

	// SetStatus transitions the member's status.
	SetStatus(orgID, userID string, status model.MemberStatus) error

	// IsEmailMember reports whether the email already belongs to an
	// active member of the organization.
	IsEmailMember(orgID, email string) (bool, error)
}
