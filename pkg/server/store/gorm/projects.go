package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

// Ensure ProjectsStore implements store.ProjectsStore
var _ store.ProjectsStore = (*ProjectsStore)(nil)

// ProjectsStore implements store.ProjectsStore using GORM
type ProjectsStore struct {
	db *gorm.DB
}

// NewProjectsStore creates a new ProjectsStore
func NewProjectsStore(db *gorm.DB) *ProjectsStore {
	return &ProjectsStore{db: db}
}

// Create persists a new project
func (s *ProjectsStore) Create(project *model.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Status == "" {
		project.Status = model.ProjectStatusActive
	}
	return translateError(s.db.Create(project).Error)
}

// Fetch retrieves a project by id
func (s *ProjectsStore) Fetch(projectID string) (*model.Project, error) {
	var project model.Project
	tx := s.db.Where("id = ?", projectID).First(&project)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &project, nil
}

// List returns the projects of an organization
func (s *ProjectsStore) List(orgID string) ([]model.Project, error) {
	var projects []model.Project
	err := s.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// AddMember adds a user to a project
func (s *ProjectsStore) AddMember(member *model.ProjectMember) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	if member.Role == "" {
		member.Role = model.ProjectRoleObserver
	}
	return translateError(s.db.Create(member).Error)
}

// RemoveMember removes a user from a project
func (s *ProjectsStore) RemoveMember(projectID, userID string) error {
	tx := s.db.Exec(`DELETE FROM project_members WHERE project_id = ? AND user_id = ?`, projectID, userID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListMembers returns the members of a project with profiles joined in
func (s *ProjectsStore) ListMembers(projectID string) ([]model.ProjectMember, error) {
	var members []model.ProjectMember
	err := s.db.Where("project_id = ?", projectID).Order("joined_at").Find(&members).Error
	if err != nil {
		return nil, err
	}
	for i := range members {
		var profile model.UserProfile
		if err := s.db.Where("id = ?", members[i].UserID).First(&profile).Error; err == nil {
			members[i].User = &profile
		}
	}
	return members, nil
}
