package members

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/breeqa/breeqa-server/pkg/audit"
	"github.com/breeqa/breeqa-server/pkg/identity"
	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

func TestMain(m *testing.M) {
	audit.SetEnabled(false)
	m.Run()
}

// MockMembershipsStore is a mock implementation of store.MembershipsStore
type MockMembershipsStore struct {
	mock.Mock
}

func (m *MockMembershipsStore) ResolveRole(userID, orgID string) (*rbac.Role, error) {
	args := m.Called(userID, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rbac.Role), args.Error(1)
}

func (m *MockMembershipsStore) FetchMember(orgID, userID string) (*model.OrganizationMember, error) {
	args := m.Called(orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationMember), args.Error(1)
}

func (m *MockMembershipsStore) ListMembers(orgID string, includeInactive bool) ([]model.OrganizationMember, error) {
	args := m.Called(orgID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrganizationMember), args.Error(1)
}

func (m *MockMembershipsStore) SetRole(orgID, userID string, role rbac.Role) error {
	args := m.Called(orgID, userID, role)
	return args.Error(0)
}

func (m *MockMembershipsStore) SetStatus(orgID, userID string, status model.MemberStatus) error {
	args := m.Called(orgID, userID, status)
	return args.Error(0)
}

func (m *MockMembershipsStore) IsEmailMember(orgID, email string) (bool, error) {
	args := m.Called(orgID, email)
	return args.Bool(0), args.Error(1)
}

func rolePtr(r rbac.Role) *rbac.Role {
	return &r
}

func testService(memberships *MockMembershipsStore) *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(memberships, logger)
}

func actingUser() *identity.Identity {
	return &identity.Identity{UserID: "user-1", Email: "admin@example.com"}
}

func TestChangeRole(t *testing.T) {
	memberships := new(MockMembershipsStore)
	svc := testService(memberships)

	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleAdmin), nil)
	memberships.On("FetchMember", "org-1", "user-2").Return(&model.OrganizationMember{
		OrganizationID: "org-1",
		UserID:         "user-2",
		Role:           rbac.RoleViewer,
		Status:         model.MemberStatusActive,
	}, nil)
	memberships.On("SetRole", "org-1", "user-2", rbac.RoleDeveloper).Return(nil)

	member, err := svc.ChangeRole(context.Background(), actingUser(), "org-1", "user-2", rbac.RoleDeveloper)
	require.NoError(t, err)
	assert.Equal(t, rbac.RoleDeveloper, member.Role)
	memberships.AssertExpectations(t)
}

func TestChangeRoleManagerDenied(t *testing.T) {
	// users:manage is admin-only; a manager cannot change roles
	memberships := new(MockMembershipsStore)
	svc := testService(memberships)

	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleManager), nil)

	_, err := svc.ChangeRole(context.Background(), actingUser(), "org-1", "user-2", rbac.RoleDeveloper)
	assert.ErrorIs(t, err, ErrUnauthorized)
	memberships.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeRoleEqualRankDenied(t *testing.T) {
	// An admin cannot change another admin: equal rank is never managed
	memberships := new(MockMembershipsStore)
	svc := testService(memberships)

	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleAdmin), nil)
	memberships.On("FetchMember", "org-1", "user-2").Return(&model.OrganizationMember{
		OrganizationID: "org-1",
		UserID:         "user-2",
		Role:           rbac.RoleAdmin,
		Status:         model.MemberStatusActive,
	}, nil)

	_, err := svc.ChangeRole(context.Background(), actingUser(), "org-1", "user-2", rbac.RoleManager)
	assert.ErrorIs(t, err, ErrUnauthorized)
	memberships.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeRoleSelfDenied(t *testing.T) {
	memberships := new(MockMembershipsStore)
	svc := testService(memberships)

	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleAdmin), nil)
	memberships.On("FetchMember", "org-1", "user-1").Return(&model.OrganizationMember{
		OrganizationID: "org-1",
		UserID:         "user-1",
		Role:           rbac.RoleAdmin,
		Status:         model.MemberStatusActive,
	}, nil)

	_, err := svc.ChangeRole(context.Background(), actingUser(), "org-1", "user-1", rbac.RoleViewer)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestChangeRoleInvalidRole(t *testing.T) {
	svc := testService(new(MockMembershipsStore))

	_, err := svc.ChangeRole(context.Background(), actingUser(), "org-1", "user-2", rbac.Role(99))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestChangeRoleMemberNotFound(t *testing.T) {
	memberships := new(MockMembershipsStore)
	svc := testService(memberships)

	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleAdmin), nil)
	memberships.On("FetchMember", "org-1", "user-404").Return(nil, store.ErrNotFound)

	_, err := svc.ChangeRole(context.Background(), actingUser(), "org-1", "user-404", rbac.RoleDeveloper)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSuspend(t *testing.T) {
	memberships := new(MockMembershipsStore)
	svc := testService(memberships)

	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleManager), nil)
	memberships.On("FetchMember", "org-1", "user-2").Return(&model.OrganizationMember{
		OrganizationID: "org-1",
		UserID:         "user-2",
		Role:           rbac.RoleDeveloper,
		Status:         model.MemberStatusActive,
	}, nil)
	memberships.On("SetStatus", "org-1", "user-2", model.MemberStatusSuspended).Return(nil)

	err := svc.Suspend(context.Background(), actingUser(), "org-1", "user-2")
	assert.NoError(t, err)
	memberships.AssertExpectations(t)
}

func TestSuspendManagerCannotSuspendAdmin(t *testing.T) {
	memberships := new(MockMembershipsStore)
	svc := testService(memberships)

	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleManager), nil)
	memberships.On("FetchMember", "org-1", "user-2").Return(&model.OrganizationMember{
		OrganizationID: "org-1",
		UserID:         "user-2",
		Role:           rbac.RoleAdmin,
		Status:         model.MemberStatusActive,
	}, nil)

	err := svc.Suspend(context.Background(), actingUser(), "org-1", "user-2")
	assert.ErrorIs(t, err, ErrUnauthorized)
	memberships.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSuspendDeniedForRole(t *testing.T) {
	tests := []struct {
		name string
		role *rbac.Role
	}{
		{"developer cannot suspend", rolePtr(rbac.RoleDeveloper)},
		{"viewer cannot suspend", rolePtr(rbac.RoleViewer)},
		{"non-member cannot suspend", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memberships := new(MockMembershipsStore)
			svc := testService(memberships)

			if tt.role == nil {
				memberships.On("ResolveRole", "user-1", "org-1").Return(nil, nil)
			} else {
				memberships.On("ResolveRole", "user-1", "org-1").Return(tt.role, nil)
			}

			err := svc.Suspend(context.Background(), actingUser(), "org-1", "user-2")
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestSuspendNotActive(t *testing.T) {
	memberships := new(MockMembershipsStore)
	svc := testService(memberships)

	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleAdmin), nil)
	memberships.On("FetchMember", "org-1", "user-2").Return(&model.OrganizationMember{
		OrganizationID: "org-1",
		UserID:         "user-2",
		Role:           rbac.RoleDeveloper,
		Status:         model.MemberStatusSuspended,
	}, nil)

	err := svc.Suspend(context.Background(), actingUser(), "org-1", "user-2")
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestListMembers(t *testing.T) {
	memberships := new(MockMembershipsStore)
	svc := testService(memberships)

	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleManager), nil)
	memberships.On("ListMembers", "org-1", false).Return([]model.OrganizationMember{
		{UserID: "user-1", Role: rbac.RoleManager, Status: model.MemberStatusActive},
		{UserID: "user-2", Role: rbac.RoleDeveloper, Status: model.MemberStatusActive},
	}, nil)

	members, err := svc.List(context.Background(), actingUser(), "org-1", false)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestListMembersDeniedForViewer(t *testing.T) {
	memberships := new(MockMembershipsStore)
	svc := testService(memberships)

	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleViewer), nil)

	_, err := svc.List(context.Background(), actingUser(), "org-1", false)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
