package model

import "time"

// Organization represents a tenant in Breeqa
type Organization struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Slug        string    `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	LogoURL     string    `gorm:"column:logo_url" json:"logo_url,omitempty"`
	CreatedBy   string    `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}
