package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// FetchProfile retrieves a profile by user id
func (s *UsersStore) FetchProfile(userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	tx := s.db.Where("id = ?", userID).First(&profile)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &profile, nil
}

// FetchByEmail retrieves a profile by email
func (s *UsersStore) FetchByEmail(email string) (*model.UserProfile, error) {
	var profile model.UserProfile
	tx := s.db.Where("lower(email) = lower(?)", email).First(&profile)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &profile, nil
}

// UpsertProfile creates or updates a profile
func (s *UsersStore) UpsertProfile(profile *model.UserProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	return translateError(s.db.Save(profile).Error)
}
