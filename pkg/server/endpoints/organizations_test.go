package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/breeqa/breeqa-server/pkg/identity"
	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
)

func TestCreateOrganization(t *testing.T) {
	orgs := new(MockOrganizationsStore)
	orgs.On("Create", mock.AnythingOfType("*model.Organization"), "user-1").Return(nil)

	rec := serve(t, "POST", "/organizations", "/organizations",
		`{"name":"Acme QA","slug":"acme-qa","description":"QA tracking"}`,
		&identity.Identity{UserID: "user-1"},
		handleCreateOrganization(orgs))

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	created := orgs.Calls[0].Arguments.Get(0).(*model.Organization)
	assert.Equal(t, "Acme QA", created.Name)
	assert.Equal(t, "acme-qa", created.Slug)
	assert.Equal(t, "user-1", created.CreatedBy)
	assert.NotEmpty(t, created.ID)
}

func TestCreateOrganizationInvalidSlug(t *testing.T) {
	orgs := new(MockOrganizationsStore)

	for _, slug := range []string{"", "Has Spaces", "UPPER", "trailing-", "-leading"} {
		rec := serve(t, "POST", "/organizations", "/organizations",
			`{"name":"Acme","slug":"`+slug+`"}`,
			&identity.Identity{UserID: "user-1"},
			handleCreateOrganization(orgs))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "slug %q", slug)
	}
	orgs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetOrganization(t *testing.T) {
	orgs := new(MockOrganizationsStore)
	memberships := new(MockMembershipsStore)

	memberships.On("ResolveRole", "user-1", "org-1").Return(rolePtr(rbac.RoleViewer), nil)
	orgs.On("Fetch", "org-1").Return(&model.Organization{ID: "org-1", Name: "Acme QA"}, nil)

	rec := serve(t, "GET", "/organizations/{org_id}", "/organizations/org-1", "",
		&identity.Identity{UserID: "user-1"},
		handleGetOrganization(orgs, memberships))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
}

func TestGetOrganizationHiddenFromNonMembers(t *testing.T) {
	orgs := new(MockOrganizationsStore)
	memberships := new(MockMembershipsStore)

	memberships.On("ResolveRole", "user-1", "org-1").Return(nil, nil)

	rec := serve(t, "GET", "/organizations/{org_id}", "/organizations/org-1", "",
		&identity.Identity{UserID: "user-1"},
		handleGetOrganization(orgs, memberships))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	orgs.AssertNotCalled(t, "Fetch", mock.Anything)
}

func TestListOrganizations(t *testing.T) {
	orgs := new(MockOrganizationsStore)
	orgs.On("ListForUser", "user-1").Return([]model.Organization{
		{ID: "org-1", Name: "Acme QA"},
		{ID: "org-2", Name: "Beta Labs"},
	}, nil)

	rec := serve(t, "GET", "/organizations", "/organizations", "",
		&identity.Identity{UserID: "user-1"},
		handleListOrganizations(orgs))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Len(t, env.Data, 2)
}
