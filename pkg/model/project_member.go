package model

import "time"

// Project-level roles, distinct from the organization role catalog.
const (
	ProjectRoleLead     = "lead"
	ProjectRoleTester   = "tester"
	ProjectRoleObserver = "observer"
)

// ProjectMember represents a user's membership in a project
type ProjectMember struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	ProjectID string    `gorm:"column:project_id;not null" json:"project_id"`
	UserID    string    `gorm:"column:user_id;not null" json:"user_id"`
	Role      string    `gorm:"column:role;not null;default:observer" json:"role"`
	InvitedBy string    `gorm:"column:invited_by" json:"invited_by,omitempty"`
	JoinedAt  time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`

	// Joined data, not persisted through this model
	User *UserProfile `gorm:"-" json:"user,omitempty"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}
