package store

import "github.com/breeqa/breeqa-server/pkg/model"

// ProjectsStore abstracts project storage.
type ProjectsStore interface {
	// Create persists a new project.
	Create(project *model.Project) error

	// Fetch retrieves a project by id, or ErrNotFound.
	Fetch(projectID string) (*model.Project, error)

	// List returns the projects of an organization.
	List(orgID string) ([]model.Project, error)

	// AddMember adds a user to a project. Duplicate membership
	// surfaces as ErrDuplicate.
	AddMember(member *model.ProjectMember) error

	// RemoveMember removes a user from a project.
	RemoveMember(projectID, userID string) error

	// ListMembers returns the members of a project with profiles
	// joined in.
	ListMembers(projectID string) ([]model.ProjectMember, error)
}
