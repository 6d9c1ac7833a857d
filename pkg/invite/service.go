package invite

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/breeqa/breeqa-server/pkg/audit"
	"github.com/breeqa/breeqa-server/pkg/identity"
	"github.com/breeqa/breeqa-server/pkg/mailer"
	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

// DefaultTTL is how long invitations stay valid when no TTL is configured
const DefaultTTL = 7 * 24 * time.Hour

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service implements the invitation state machine. All entry points
// (HTTP, CLI) go through it so the lifecycle rules live in one place.
type Service struct {
	invitations store.InvitationsStore
	memberships store.MembershipsStore
	mailer      mailer.Mailer
	logger      *logrus.Logger
	ttl         time.Duration

	now func() time.Time
}

// NewService creates an invitation Service. A ttl of zero or less falls
// back to DefaultTTL.
func NewService(
	invitations store.InvitationsStore,
	memberships store.MembershipsStore,
	m mailer.Mailer,
	logger *logrus.Logger,
	ttl time.Duration,
) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		invitations: invitations,
		memberships: memberships,
		mailer:      m,
		logger:      logger,
		ttl:         ttl,
		now:         time.Now,
	}
}

// Create issues a pending invitation and sends the invitation email.
// Email delivery is best-effort: a send failure is logged and the
// invitation stands.
func (s *Service) Create(ctx context.Context, acting *identity.Identity, orgID, email string, role rbac.Role) (*model.OrganizationInvitation, error) {
	if acting == nil {
		return nil, ErrUnauthenticated
	}

	actingRole, err := s.memberships.ResolveRole(acting.UserID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}
	allowed := rbac.HasPermission(actingRole, "users:invite")
	audit.Log(audit.CheckEvent{
		UserID:         acting.UserID,
		ClientIP:       acting.RemoteIP.String(),
		OrganizationID: orgID,
		Permission:     "users:invite",
		Allowed:        allowed,
	})
	if !allowed {
		return nil, ErrUnauthorized
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if !role.IsARole() {
		return nil, ErrInvalidRole
	}

	isMember, err := s.memberships.IsEmailMember(orgID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return nil, ErrAlreadyMember
	}

	if _, err := s.invitations.FindPending(orgID, email); err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}

	now := s.now().UTC()
	inv := &model.OrganizationInvitation{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		Email:          email,
		Role:           role,
		Status:         model.InvitationStatusPending,
		Token:          uuid.NewString(),
		InvitedBy:      acting.UserID,
		ExpiresAt:      now.Add(s.ttl),
	}
	if err := s.invitations.Create(inv); err != nil {
		// A concurrent writer can slip past the FindPending check; the
		// partial unique index catches it.
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	audit.Log(audit.InvitationEvent{
		Operation:      audit.InvitationCreated,
		ActorID:        acting.UserID,
		ClientIP:       acting.RemoteIP.String(),
		OrganizationID: orgID,
		Email:          email,
		Role:           role.String(),
		Success:        true,
	})

	// Reload to pick up the organization and inviter for the email body
	if full, err := s.invitations.FindByToken(inv.Token); err == nil {
		inv = full
	}

	if err := s.mailer.SendInvitation(ctx, inv); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"email":        email,
			"organization": orgID,
		}).Warn("failed to send invitation email")
	}

	return inv, nil
}

// Load resolves a token to its pending, unexpired invitation. An
// invitation found past its expiry is marked expired on the way out.
func (s *Service) Load(token string) (*model.OrganizationInvitation, error) {
	inv, err := s.invitations.FindByToken(token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidOrExpired
		}
		return nil, fmt.Errorf("failed to load invitation: %w", err)
	}
	if inv.Status != model.InvitationStatusPending {
		return nil, ErrInvalidOrExpired
	}
	if inv.Expired(s.now()) {
		s.expire(inv)
		return nil, ErrInvalidOrExpired
	}
	return inv, nil
}

// Accept redeems a pending invitation for the authenticated user,
// creating the active membership and marking the invitation accepted in
// one transaction.
func (s *Service) Accept(ctx context.Context, acting *identity.Identity, token string) (*model.OrganizationMember, error) {
	if acting == nil {
		return nil, ErrUnauthenticated
	}

	inv, err := s.Load(token)
	if err != nil {
		return nil, err
	}

	member, err := s.invitations.Accept(inv, acting.UserID, s.now().UTC())
	if err != nil {
		// Lost a race: someone else transitioned the invitation first
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidOrExpired
		}
		if errors.Is(err, store.ErrAlreadyMember) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	audit.Log(audit.InvitationEvent{
		Operation:      audit.InvitationAccepted,
		ActorID:        acting.UserID,
		ClientIP:       acting.RemoteIP.String(),
		OrganizationID: inv.OrganizationID,
		Email:          inv.Email,
		Role:           inv.Role.String(),
		Success:        true,
	})
	return member, nil
}

// Revoke cancels a pending invitation.
func (s *Service) Revoke(ctx context.Context, acting *identity.Identity, orgID, invitationID string) error {
	if acting == nil {
		return ErrUnauthenticated
	}

	actingRole, err := s.memberships.ResolveRole(acting.UserID, orgID)
	if err != nil {
		return fmt.Errorf("failed to resolve role: %w", err)
	}
	allowed := rbac.HasPermission(actingRole, "users:invite")
	audit.Log(audit.CheckEvent{
		UserID:         acting.UserID,
		ClientIP:       acting.RemoteIP.String(),
		OrganizationID: orgID,
		Permission:     "users:invite",
		Allowed:        allowed,
	})
	if !allowed {
		return ErrUnauthorized
	}

	err = s.invitations.Transition(orgID, invitationID, model.InvitationStatusPending, model.InvitationStatusCancelled)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotPending
		}
		return fmt.Errorf("failed to revoke invitation: %w", err)
	}

	audit.Log(audit.InvitationEvent{
		Operation:      audit.InvitationRevoked,
		ActorID:        acting.UserID,
		ClientIP:       acting.RemoteIP.String(),
		OrganizationID: orgID,
		Success:        true,
	})
	return nil
}

// ListPending returns the organization's pending invitations for
// members allowed to see them.
func (s *Service) ListPending(ctx context.Context, acting *identity.Identity, orgID string) ([]model.OrganizationInvitation, error) {
	if acting == nil {
		return nil, ErrUnauthenticated
	}

	actingRole, err := s.memberships.ResolveRole(acting.UserID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}
	if !rbac.HasPermission(actingRole, "users:view") {
		return nil, ErrUnauthorized
	}

	invs, err := s.invitations.ListPending(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return s.withoutExpired(invs), nil
}

// ListForUser returns pending invitations addressed to the
// authenticated user's email, across organizations.
func (s *Service) ListForUser(ctx context.Context, acting *identity.Identity) ([]model.OrganizationInvitation, error) {
	if acting == nil {
		return nil, ErrUnauthenticated
	}

	invs, err := s.invitations.ListPendingByEmail(acting.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return s.withoutExpired(invs), nil
}

// withoutExpired filters out invitations past their expiry, marking
// each one expired as it is encountered.
func (s *Service) withoutExpired(invs []model.OrganizationInvitation) []model.OrganizationInvitation {
	now := s.now()
	live := invs[:0]
	for i := range invs {
		if invs[i].Expired(now) {
			s.expire(&invs[i])
			continue
		}
		live = append(live, invs[i])
	}
	return live
}

// expire flips a stale pending invitation to expired. Best-effort: a
// concurrent transition just means someone else got there first.
func (s *Service) expire(inv *model.OrganizationInvitation) {
	err := s.invitations.Transition(inv.OrganizationID, inv.ID, model.InvitationStatusPending, model.InvitationStatusExpired)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.logger.WithError(err).WithField("invitation", inv.ID).Warn("failed to mark invitation expired")
		return
	}
	if err == nil {
		audit.Log(audit.InvitationEvent{
			Operation:      audit.InvitationExpired,
			OrganizationID: inv.OrganizationID,
			Email:          inv.Email,
			Role:           inv.Role.String(),
			Success:        true,
		})
	}
}
