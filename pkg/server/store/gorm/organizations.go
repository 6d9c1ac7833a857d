package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

// Ensure OrganizationsStore implements store.OrganizationsStore
var _ store.OrganizationsStore = (*OrganizationsStore)(nil)

// OrganizationsStore implements store.OrganizationsStore using GORM
type OrganizationsStore struct {
	db *gorm.DB
}

// NewOrganizationsStore creates a new OrganizationsStore
func NewOrganizationsStore(db *gorm.DB) *OrganizationsStore {
	return &OrganizationsStore{db: db}
}

// Create persists the organization and makes the creator an active
// admin member in the same transaction.
func (s *OrganizationsStore) Create(org *model.Organization, creatorID string) error {
	if org.ID == "" {
		org.ID = uuid.NewString()
	}
	org.CreatedBy = creatorID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		member := &model.OrganizationMember{
			ID:             uuid.NewString(),
			OrganizationID: org.ID,
			UserID:         creatorID,
			Role:           rbac.RoleAdmin,
			Status:         model.MemberStatusActive,
			JoinedAt:       time.Now().UTC(),
		}
		return tx.Create(member).Error
	})
	return translateError(err)
}

// Fetch retrieves an organization by id
func (s *OrganizationsStore) Fetch(orgID string) (*model.Organization, error) {
	var org model.Organization
	tx := s.db.Where("id = ?", orgID).First(&org)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &org, nil
}

// FetchBySlug retrieves an organization by slug
func (s *OrganizationsStore) FetchBySlug(slug string) (*model.Organization, error) {
	var org model.Organization
	tx := s.db.Where("slug = ?", slug).First(&org)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &org, nil
}

// ListForUser returns the organizations where the user has an active membership
func (s *OrganizationsStore) ListForUser(userID string) ([]model.Organization, error) {
	var orgs []model.Organization
	err := s.db.Raw(`
		SELECT o.* FROM organizations o
		JOIN organization_members m ON m.organization_id = o.id
		WHERE m.user_id = ? AND m.status = 'active'
		ORDER BY o.name
	`, userID).Scan(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}
