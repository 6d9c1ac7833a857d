package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

// Ensure MembershipsStore implements store.MembershipsStore
var _ store.MembershipsStore = (*MembershipsStore)(nil)

// MembershipsStore implements store.MembershipsStore using GORM
type MembershipsStore struct {
	db *gorm.DB
}

// NewMembershipsStore creates a new MembershipsStore
func NewMembershipsStore(db *gorm.DB) *MembershipsStore {
	return &MembershipsStore{db: db}
}

// ResolveRole returns the role of the user's active membership, or nil
// when there is none. Pending and suspended rows never resolve.
func (s *MembershipsStore) ResolveRole(userID, orgID string) (*rbac.Role, error) {
	var roleName string
	tx := s.db.Raw(`
		SELECT role FROM organization_members
		WHERE organization_id = ? AND user_id = ? AND status = 'active'
	`, orgID, userID).Scan(&roleName)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 || roleName == "" {
		return nil, nil
	}

	role, err := rbac.RoleString(roleName)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// FetchMember retrieves a membership regardless of status
func (s *MembershipsStore) FetchMember(orgID, userID string) (*model.OrganizationMember, error) {
	var member model.OrganizationMember
	tx := s.db.Where("organization_id = ? AND user_id = ?", orgID, userID).First(&member)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &member, nil
}

// ListMembers returns memberships of an organization with profiles
// joined in, active only unless includeInactive is set.
func (s *MembershipsStore) ListMembers(orgID string, includeInactive bool) ([]model.OrganizationMember, error) {
	query := s.db.Where("organization_id = ?", orgID)
	if !includeInactive {
		query = query.Where("status = ?", model.MemberStatusActive)
	}

	var members []model.OrganizationMember
	if err := query.Order("joined_at").Find(&members).Error; err != nil {
		return nil, err
	}

	for i := range members {
		var profile model.UserProfile
		tx := s.db.Where("id = ?", members[i].UserID).First(&profile)
		if tx.Error == nil {
			members[i].User = &profile
		}
	}
	return members, nil
}

// SetRole overwrites the member's role without touching status
func (s *MembershipsStore) SetRole(orgID, userID string, role rbac.Role) error {
	tx := s.db.Exec(`
		UPDATE organization_members SET role = ?, updated_at = now()
		WHERE organization_id = ? AND user_id = ?
	`, role.String(), orgID, userID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// SetStatus transitions the member's status
func (s *MembershipsStore) SetStatus(orgID, userID string, status model.MemberStatus) error {
	tx := s.db.Exec(`
		UPDATE organization_members SET status = ?, updated_at = now()
		WHERE organization_id = ? AND user_id = ?
	`, status.String(), orgID, userID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// IsEmailMember reports whether the email belongs to an active member
func (s *MembershipsStore) IsEmailMember(orgID, email string) (bool, error) {
	var isMember bool
	err := s.db.Raw(`
		SELECT EXISTS(
			SELECT 1 FROM organization_members m
			JOIN user_profiles u ON u.id = m.user_id
			WHERE m.organization_id = ? AND lower(u.email) = lower(?) AND m.status = 'active'
		)
	`, orgID, email).Scan(&isMember).Error
	return isMember, err
}
