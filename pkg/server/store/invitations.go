package store

import (
	"time"

	"github.com/breeqa/breeqa-server/pkg/model"
)

// InvitationsStore abstracts invitation storage.
type InvitationsStore interface {
	// Create persists a new pending invitation. A uniqueness violation
	// on (org, email, pending) surfaces as ErrDuplicate, never as a raw
	// driver error.
	Create(inv *model.OrganizationInvitation) error

	// FindPending returns the pending invitation for (org, email), or
	// ErrNotFound.
	FindPending(orgID, email string) (*model.OrganizationInvitation, error)

	// FindByToken returns the invitation holding the token, or
	// ErrNotFound. Status and expiry are NOT checked here.
	FindByToken(token string) (*model.OrganizationInvitation, error)

	// ListPending returns pending invitations for an organization,
	// newest first.
	ListPending(orgID string) ([]model.OrganizationInvitation, error)

	// ListPendingByEmail returns pending invitations addressed to an
	// email across all organizations.
	ListPendingByEmail(email string) ([]model.OrganizationInvitation, error)

	// Transition moves an invitation from one status to another, scoped
	// to the organization. Returns ErrNotFound when no row in that
	// organization was in the expected status, so a second revoke of the
	// same invitation fails instead of double-transitioning.
	Transition(orgID, invitationID string, from, to model.InvitationStatus) error

	// Accept atomically creates the active membership and marks the
	// invitation accepted. Either both writes commit or neither does.
	// A membership uniqueness violation surfaces as ErrAlreadyMember.
	Accept(inv *model.OrganizationInvitation, userID string, now time.Time) (*model.OrganizationMember, error)
}
