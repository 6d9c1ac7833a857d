package model

import "time"

// Project statuses. Kept as plain strings: projects carry no
// authorization weight beyond the permission table.
const (
	ProjectStatusActive    = "active"
	ProjectStatusArchived  = "archived"
	ProjectStatusCompleted = "completed"
)

// Project represents a project inside an organization
type Project struct {
	ID             string    `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID string    `gorm:"column:organization_id;not null" json:"organization_id"`
	Name           string    `gorm:"column:name;not null" json:"name"`
	Slug           string    `gorm:"column:slug;not null" json:"slug"`
	Description    string    `gorm:"column:description" json:"description,omitempty"`
	Status         string    `gorm:"column:status;default:active" json:"status"`
	Icon           string    `gorm:"column:icon" json:"icon,omitempty"`
	Color          string    `gorm:"column:color" json:"color,omitempty"`
	CreatedBy      string    `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
