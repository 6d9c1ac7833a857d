package model

import (
	"time"

	"github.com/breeqa/breeqa-server/pkg/rbac"
)

// OrganizationInvitation represents an invitation to join an
// organization. The token is the sole capability needed to accept; it is
// bound to the invited email, not to a pre-existing account. At most one
// pending invitation may exist per (org, email).
type OrganizationInvitation struct {
	ID             string           `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID string           `gorm:"column:organization_id;not null" json:"organization_id"`
	Email          string           `gorm:"column:email;not null" json:"email"`
	Role           rbac.Role        `gorm:"column:role;not null" json:"role"`
	Token          string           `gorm:"column:token;uniqueIndex;not null" json:"token"`
	InvitedBy      string           `gorm:"column:invited_by;not null" json:"invited_by"`
	ExpiresAt      time.Time        `gorm:"column:expires_at;not null" json:"expires_at"`
	Status         InvitationStatus `gorm:"column:status;not null" json:"status"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Joined data, not persisted through this model
	Organization *Organization `gorm:"-" json:"organization,omitempty"`
	Inviter      *UserProfile  `gorm:"-" json:"inviter,omitempty"`
}

func (OrganizationInvitation) TableName() string {
	return "organization_invitations"
}

// Expired reports whether the invitation is past its expiry at the
// given instant. The boundary itself counts as expired.
func (i OrganizationInvitation) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
