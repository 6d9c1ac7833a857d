package integration

import (
	"fmt"
)

// Invitation steps

func (s *StepsContext) iInviteAs(email, role string) error {
	body := fmt.Sprintf(`{"email":%q,"role":%q}`, email, role)
	return s.doRequest("POST", "/organizations/"+s.currentOrgID+"/invitations", body)
}

func (s *StepsContext) invitationFor(email string) (id, token string, err error) {
	row := struct {
		ID    string
		Token string
	}{}
	err = s.tc.DB.Raw(`
		SELECT id, token FROM organization_invitations
		WHERE organization_id = ? AND email = ?
		ORDER BY created_at DESC LIMIT 1
	`, s.currentOrgID, email).Scan(&row).Error
	if err != nil {
		return "", "", err
	}
	if row.Token == "" {
		return "", "", fmt.Errorf("no invitation found for %s", email)
	}
	return row.ID, row.Token, nil
}

func (s *StepsContext) iAcceptTheInvitationSentTo(email string) error {
	_, token, err := s.invitationFor(email)
	if err != nil {
		return err
	}
	return s.doRequest("POST", "/invitations/"+token+"/accept", "")
}

func (s *StepsContext) iPreviewTheInvitationSentTo(email string) error {
	_, token, err := s.invitationFor(email)
	if err != nil {
		return err
	}
	return s.doRequest("GET", "/invitations/"+token, "")
}

func (s *StepsContext) iRevokeTheInvitationFor(email string) error {
	id, _, err := s.invitationFor(email)
	if err != nil {
		return err
	}
	return s.doRequest("DELETE", "/organizations/"+s.currentOrgID+"/invitations/"+id, "")
}

func (s *StepsContext) theInvitationForHasExpired(email string) error {
	id, _, err := s.invitationFor(email)
	if err != nil {
		return err
	}
	return s.tc.DB.Exec(`
		UPDATE organization_invitations SET expires_at = now() - interval '1 hour' WHERE id = ?
	`, id).Error
}

func (s *StepsContext) theInvitationForShouldBe(email, status string) error {
	var got string
	err := s.tc.DB.Raw(`
		SELECT status FROM organization_invitations
		WHERE organization_id = ? AND email = ?
		ORDER BY created_at DESC LIMIT 1
	`, s.currentOrgID, email).Scan(&got).Error
	if err != nil {
		return err
	}
	if got != status {
		return fmt.Errorf("expected invitation status %q, got %q", status, got)
	}
	return nil
}

func (s *StepsContext) shouldBeAnActiveMember(email, role string) error {
	var got string
	err := s.tc.DB.Raw(`
		SELECT role FROM organization_members
		WHERE organization_id = ? AND user_id = ? AND status = 'active'
	`, s.currentOrgID, s.userIDs[email]).Scan(&got).Error
	if err != nil {
		return err
	}
	if got != role {
		return fmt.Errorf("expected %s to be an active %q member, got %q", email, role, got)
	}
	return nil
}

// Membership steps

func (s *StepsContext) iChangeTheRoleOfTo(email, role string) error {
	body := fmt.Sprintf(`{"role":%q}`, role)
	return s.doRequest("PATCH", "/organizations/"+s.currentOrgID+"/members/"+s.userIDs[email], body)
}

func (s *StepsContext) iSuspend(email string) error {
	return s.doRequest("DELETE", "/organizations/"+s.currentOrgID+"/members/"+s.userIDs[email], "")
}

func (s *StepsContext) shouldBeSuspended(email string) error {
	var got string
	err := s.tc.DB.Raw(`
		SELECT status FROM organization_members
		WHERE organization_id = ? AND user_id = ?
		ORDER BY updated_at DESC LIMIT 1
	`, s.currentOrgID, s.userIDs[email]).Scan(&got).Error
	if err != nil {
		return err
	}
	if got != "suspended" {
		return fmt.Errorf("expected %s to be suspended, got %q", email, got)
	}
	return nil
}

func (s *StepsContext) iFetchTheOrganization() error {
	return s.doRequest("GET", "/organizations/"+s.currentOrgID, "")
}
