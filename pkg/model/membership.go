package model

import (
	"time"

	"github.com/breeqa/breeqa-server/pkg/rbac"
)

// OrganizationMember represents one user's membership in one
// organization. At most one active row may exist per (org, user); the
// database enforces this with a partial unique index. Rows are never
// hard-deleted so that history survives suspension.
type OrganizationMember struct {
	ID             string       `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID string       `gorm:"column:organization_id;not null" json:"organization_id"`
	UserID         string       `gorm:"column:user_id;not null" json:"user_id"`
	Role           rbac.Role    `gorm:"column:role;not null" json:"role"`
	Status         MemberStatus `gorm:"column:status;not null" json:"status"`
	InvitedBy      string       `gorm:"column:invited_by" json:"invited_by,omitempty"`
	JoinedAt       time.Time    `gorm:"column:joined_at" json:"joined_at"`
	CreatedAt      time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Joined data, not persisted through this model
	User *UserProfile `gorm:"-" json:"user,omitempty"`
}

func (OrganizationMember) TableName() string {
	return "organization_members"
}
