package members

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/breeqa/breeqa-server/pkg/audit"
	"github.com/breeqa/breeqa-server/pkg/identity"
	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

// Service implements member management on top of the memberships store.
// Every decision resolves the acting role fresh; role changes take
// effect on the next request.
type Service struct {
	memberships store.MembershipsStore
	logger      *logrus.Logger
}

// NewService creates a member management Service
func NewService(memberships store.MembershipsStore, logger *logrus.Logger) *Service {
	return &Service{memberships: memberships, logger: logger}
}

// List returns the organization's members. Active members only unless
// includeInactive is set.
func (s *Service) List(ctx context.Context, acting *identity.Identity, orgID string, includeInactive bool) ([]model.OrganizationMember, error) {
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

	members, err := s.memberships.ListMembers(orgID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// ChangeRole overwrites the target member's role. The acting user needs
// the users:manage permission and must outrank the target's current
// role. Equal rank never qualifies, which also rules out changing your
// own role.
func (s *Service) ChangeRole(ctx context.Context, acting *identity.Identity, orgID, targetUserID string, newRole rbac.Role) (*model.OrganizationMember, error) {
	if acting == nil {
		return nil, ErrUnauthenticated
	}
	if !newRole.IsARole() {
		return nil, ErrInvalidRole
	}

	actingRole, err := s.memberships.ResolveRole(acting.UserID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}
	allowed := rbac.HasPermission(actingRole, "users:manage")
	audit.Log(audit.CheckEvent{
		UserID:         acting.UserID,
		ClientIP:       acting.RemoteIP.String(),
		OrganizationID: orgID,
		Permission:     "users:manage",
		Allowed:        allowed,
	})
	if !allowed {
		return nil, ErrUnauthorized
	}

	target, err := s.memberships.FetchMember(orgID, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}

	if !rbac.CanManage(*actingRole, target.Role) {
		audit.Log(audit.RoleChangeEvent{
			ActorID:        acting.UserID,
			ClientIP:       acting.RemoteIP.String(),
			OrganizationID: orgID,
			TargetUserID:   targetUserID,
			OldRole:        target.Role.String(),
			NewRole:        newRole.String(),
			Success:        false,
			ErrorMessage:   "acting role does not outrank target",
		})
		return nil, ErrUnauthorized
	}

	oldRole := target.Role
	if err := s.memberships.SetRole(orgID, targetUserID, newRole); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set role: %w", err)
	}

	audit.Log(audit.RoleChangeEvent{
		ActorID:        acting.UserID,
		ClientIP:       acting.RemoteIP.String(),
		OrganizationID: orgID,
		TargetUserID:   targetUserID,
		OldRole:        oldRole.String(),
		NewRole:        newRole.String(),
		Success:        true,
	})

	target.Role = newRole
	return target, nil
}

// Suspend transitions an active member to suspended. The membership
// record is preserved; a suspended member resolves to no role. Only
// admins and managers may suspend, and only members they outrank.
func (s *Service) Suspend(ctx context.Context, acting *identity.Identity, orgID, targetUserID string) error {
	if acting == nil {
		return ErrUnauthenticated
	}

	actingRole, err := s.memberships.ResolveRole(acting.UserID, orgID)
	if err != nil {
		return fmt.Errorf("failed to resolve role: %w", err)
	}
	if actingRole == nil || (*actingRole != rbac.RoleAdmin && *actingRole != rbac.RoleManager) {
		return ErrUnauthorized
	}

	target, err := s.memberships.FetchMember(orgID, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch member: %w", err)
	}
	if target.Status != model.MemberStatusActive {
		return ErrNotActive
	}

	if !rbac.CanManage(*actingRole, target.Role) {
		audit.Log(audit.SuspendEvent{
			ActorID:        acting.UserID,
			ClientIP:       acting.RemoteIP.String(),
			OrganizationID: orgID,
			TargetUserID:   targetUserID,
			Success:        false,
			ErrorMessage:   "acting role does not outrank target",
		})
		return ErrUnauthorized
	}

	if err := s.memberships.SetStatus(orgID, targetUserID, model.MemberStatusSuspended); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to suspend member: %w", err)
	}

	audit.Log(audit.SuspendEvent{
		ActorID:        acting.UserID,
		ClientIP:       acting.RemoteIP.String(),
		OrganizationID: orgID,
		TargetUserID:   targetUserID,
		Success:        true,
	})
	return nil
}
