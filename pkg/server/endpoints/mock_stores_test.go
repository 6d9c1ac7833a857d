package endpoints

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
)

// MockMembershipsStore implements store.MembershipsStore for testing using testify/mock
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

// MockInvitationsStore implements store.InvitationsStore for testing using testify/mock
type MockInvitationsStore struct {
	mock.Mock
}

func (m *MockInvitationsStore) Create(inv *model.OrganizationInvitation) error {
	args := m.Called(inv)
	return args.Error(0)
}

func (m *MockInvitationsStore) FindPending(orgID, email string) (*model.OrganizationInvitation, error) {
	args := m.Called(orgID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationInvitation), args.Error(1)
}

func (m *MockInvitationsStore) FindByToken(token string) (*model.OrganizationInvitation, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationInvitation), args.Error(1)
}

func (m *MockInvitationsStore) ListPending(orgID string) ([]model.OrganizationInvitation, error) {
	args := m.Called(orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrganizationInvitation), args.Error(1)
}

func (m *MockInvitationsStore) ListPendingByEmail(email string) ([]model.OrganizationInvitation, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrganizationInvitation), args.Error(1)
}

func (m *MockInvitationsStore) Transition(orgID, invitationID string, from, to model.InvitationStatus) error {
	args := m.Called(orgID, invitationID, from, to)
	return args.Error(0)
}

func (m *MockInvitationsStore) Accept(inv *model.OrganizationInvitation, userID string, now time.Time) (*model.OrganizationMember, error) {
	args := m.Called(inv, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrganizationMember), args.Error(1)
}

// MockOrganizationsStore implements store.OrganizationsStore for testing using testify/mock
type MockOrganizationsStore struct {
	mock.Mock
}

func (m *MockOrganizationsStore) Create(org *model.Organization, creatorID string) error {
	args := m.Called(org, creatorID)
	return args.Error(0)
}

func (m *MockOrganizationsStore) Fetch(orgID string) (*model.Organization, error) {
	args := m.Called(orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationsStore) FetchBySlug(slug string) (*model.Organization, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationsStore) ListForUser(userID string) ([]model.Organization, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Organization), args.Error(1)
}

// MockProjectsStore implements store.ProjectsStore for testing using testify/mock
type MockProjectsStore struct {
	mock.Mock
}

func (m *MockProjectsStore) Create(project *model.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectsStore) Fetch(projectID string) (*model.Project, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectsStore) List(orgID string) ([]model.Project, error) {
	args := m.Called(orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectsStore) AddMember(member *model.ProjectMember) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockProjectsStore) RemoveMember(projectID, userID string) error {
	args := m.Called(projectID, userID)
	return args.Error(0)
}

func (m *MockProjectsStore) ListMembers(projectID string) ([]model.ProjectMember, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectMember), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) Ping() error {
	args := m.Called()
	return args.Error(0)
}
