package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

// Ensure InvitationsStore implements store.InvitationsStore
var _ store.InvitationsStore = (*InvitationsStore)(nil)

// InvitationsStore implements store.InvitationsStore using GORM
type InvitationsStore struct {
	db *gorm.DB
}

// NewInvitationsStore creates a new InvitationsStore
func NewInvitationsStore(db *gorm.DB) *InvitationsStore {
	return &InvitationsStore{db: db}
}

// Create persists a new pending invitation. The partial unique index on
// (organization_id, email) WHERE status = 'pending' makes the second
// concurrent writer fail; that failure surfaces as ErrDuplicate.
func (s *InvitationsStore) Create(inv *model.OrganizationInvitation) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if err := s.db.Create(inv).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// FindPending returns the pending invitation for (org, email)
func (s *InvitationsStore) FindPending(orgID, email string) (*model.OrganizationInvitation, error) {
	var inv model.OrganizationInvitation
	tx := s.db.Where(
		"organization_id = ? AND lower(email) = lower(?) AND status = ?",
		orgID, email, model.InvitationStatusPending,
	).First(&inv)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &inv, nil
}

// FindByToken returns the invitation holding the token. Status and
// expiry are left to the caller.
func (s *InvitationsStore) FindByToken(token string) (*model.OrganizationInvitation, error) {
	var inv model.OrganizationInvitation
	tx := s.db.Where("token = ?", token).First(&inv)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	s.joinInvitation(&inv)
	return &inv, nil
}

// ListPending returns pending invitations for an organization, newest first
func (s *InvitationsStore) ListPending(orgID string) ([]model.OrganizationInvitation, error) {
	var invs []model.OrganizationInvitation
	err := s.db.Where("organization_id = ? AND status = ?", orgID, model.InvitationStatusPending).
		Order("created_at DESC").
		Find(&invs).Error
	if err != nil {
		return nil, err
	}
	for i := range invs {
		s.joinInvitation(&invs[i])
	}
	return invs, nil
}

// ListPendingByEmail returns pending invitations addressed to an email
func (s *InvitationsStore) ListPendingByEmail(email string) ([]model.OrganizationInvitation, error) {
	var invs []model.OrganizationInvitation
	err := s.db.Where("lower(email) = lower(?) AND status = ?", email, model.InvitationStatusPending).
		Order("created_at DESC").
		Find(&invs).Error
	if err != nil {
		return nil, err
	}
	for i := range invs {
		s.joinInvitation(&invs[i])
	}
	return invs, nil
}

// Transition moves an invitation between statuses. The update is
// conditional on the current status so repeated transitions fail with
// ErrNotFound instead of silently re-applying.
func (s *InvitationsStore) Transition(orgID, invitationID string, from, to model.InvitationStatus) error {
	tx := s.db.Exec(`
		UPDATE organization_invitations SET status = ?, updated_at = now()
		WHERE id = ? AND organization_id = ? AND status = ?
	`, to.String(), invitationID, orgID, from.String())
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Accept creates the active membership and marks the invitation
// accepted in a single transaction. Partial states never persist: a
// failed membership insert rolls the status flip back.
func (s *InvitationsStore) Accept(inv *model.OrganizationInvitation, userID string, now time.Time) (*model.OrganizationMember, error) {
	member := &model.OrganizationMember{
		ID:             uuid.NewString(),
		OrganizationID: inv.OrganizationID,
		UserID:         userID,
		Role:           inv.Role,
		Status:         model.MemberStatusActive,
		InvitedBy:      inv.InvitedBy,
		JoinedAt:       now,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			UPDATE organization_invitations SET status = 'accepted', updated_at = now()
			WHERE id = ? AND status = 'pending'
		`, inv.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return store.ErrNotFound
		}

		if err := tx.Create(member).Error; err != nil {
			if isUniqueViolation(err) {
				return store.ErrAlreadyMember
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *InvitationsStore) joinInvitation(inv *model.OrganizationInvitation) {
	var org model.Organization
	if err := s.db.Where("id = ?", inv.OrganizationID).First(&org).Error; err == nil {
		inv.Organization = &org
	}
	var inviter model.UserProfile
	if err := s.db.Where("id = ?", inv.InvitedBy).First(&inviter).Error; err == nil {
		inv.Inviter = &inviter
	}
}
