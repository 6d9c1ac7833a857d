package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/breeqa/breeqa-server/pkg/identity"
	"github.com/breeqa/breeqa-server/pkg/members"
	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
)

func membersService(memberships *MockMembershipsStore) *members.Service {
	return members.NewService(memberships, testLogger())
}

func TestChangeMemberRole(t *testing.T) {
	memberships := new(MockMembershipsStore)
	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleAdmin), nil)
	memberships.On("FetchMember", "org-1", "user-2").Return(&model.OrganizationMember{
		OrganizationID: "org-1",
		UserID:         "user-2",
		Role:           rbac.RoleViewer,
		Status:         model.MemberStatusActive,
	}, nil)
	memberships.On("SetRole", "org-1", "user-2", rbac.RoleDeveloper).Return(nil)

	rec := serve(t, "PATCH", "/organizations/{org_id}/members/{user_id}",
		"/organizations/org-1/members/user-2",
		`{"role":"developer"}`,
		&identity.Identity{UserID: "user-1"},
		handleChangeMemberRole(membersService(memberships)))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	memberships.AssertExpectations(t)
}

func TestChangeMemberRoleUnknownRole(t *testing.T) {
	memberships := new(MockMembershipsStore)

	rec := serve(t, "PATCH", "/organizations/{org_id}/members/{user_id}",
		"/organizations/org-1/members/user-2",
		`{"role":"superuser"}`,
		&identity.Identity{UserID: "user-1"},
		handleChangeMemberRole(membersService(memberships)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	memberships.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeMemberRoleManagerForbidden(t *testing.T) {
	memberships := new(MockMembershipsStore)
	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleManager), nil)

	rec := serve(t, "PATCH", "/organizations/{org_id}/members/{user_id}",
		"/organizations/org-1/members/user-2",
		`{"role":"developer"}`,
		&identity.Identity{UserID: "user-1"},
		handleChangeMemberRole(membersService(memberships)))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestSuspendMember(t *testing.T) {
	memberships := new(MockMembershipsStore)
	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleManager), nil)
	memberships.On("FetchMember", "org-1", "user-2").Return(&model.OrganizationMember{
		OrganizationID: "org-1",
		UserID:         "user-2",
		Role:           rbac.RoleDeveloper,
		Status:         model.MemberStatusActive,
	}, nil)
	memberships.On("SetStatus", "org-1", "user-2", model.MemberStatusSuspended).Return(nil)

	rec := serve(t, "DELETE", "/organizations/{org_id}/members/{user_id}",
		"/organizations/org-1/members/user-2", "",
		&identity.Identity{UserID: "user-1"},
		handleSuspendMember(membersService(memberships)))

	require.Equal(t, http.StatusOK, rec.Code)
	memberships.AssertExpectations(t)
}

func TestSuspendMemberManagerCannotSuspendAdmin(t *testing.T) {
	memberships := new(MockMembershipsStore)
	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleManager), nil)
	memberships.On("FetchMember", "org-1", "user-2").Return(&model.OrganizationMember{
		OrganizationID: "org-1",
		UserID:         "user-2",
		Role:           rbac.RoleAdmin,
		Status:         model.MemberStatusActive,
	}, nil)

	rec := serve(t, "DELETE", "/organizations/{org_id}/members/{user_id}",
		"/organizations/org-1/members/user-2", "",
		&identity.Identity{UserID: "user-1"},
		handleSuspendMember(membersService(memberships)))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	memberships.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestListMembersIncludeInactive(t *testing.T) {
	memberships := new(MockMembershipsStore)
	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleAdmin), nil)
	memberships.On("ListMembers", "org-1", true).Return([]model.OrganizationMember{
		{UserID: "user-1", Role: rbac.RoleAdmin, Status: model.MemberStatusActive},
		{UserID: "user-2", Role: rbac.RoleDeveloper, Status: model.MemberStatusSuspended},
	}, nil)

	rec := serve(t, "GET", "/organizations/{org_id}/members",
		"/organizations/org-1/members?include_inactive=true", "",
		&identity.Identity{UserID: "user-1"},
		handleListMembers(membersService(memberships)))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Len(t, env.Data, 2)
}
