package integration

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/breeqa/breeqa-server/pkg/config"
	"github.com/breeqa/breeqa-server/pkg/server/middleware"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	authToken    string
	currentOrgID string
	userIDs      map[string]string // email -> user id
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:      tc,
		userIDs: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a Breeqa server is running$`, s.aBreeqaServerIsRunning)
	sc.Step(`^a user "([^"]*)" exists$`, s.aUserExists)
	sc.Step(`^an organization "([^"]*)" exists with admin "([^"]*)"$`, s.anOrganizationExistsWithAdmin)
	sc.Step(`^"([^"]*)" is an active "([^"]*)" member$`, s.isAnActiveMember)
	sc.Step(`^I am authenticated as "([^"]*)"$`, s.iAmAuthenticatedAs)
	sc.Step(`^I am not authenticated$`, s.iAmNotAuthenticated)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)

	// Invitation steps
	sc.Step(`^I invite "([^"]*)" as "([^"]*)"$`, s.iInviteAs)
	sc.Step(`^I accept the invitation sent to "([^"]*)"$`, s.iAcceptTheInvitationSentTo)
	sc.Step(`^I preview the invitation sent to "([^"]*)"$`, s.iPreviewTheInvitationSentTo)
	sc.Step(`^I revoke the invitation for "([^"]*)"$`, s.iRevokeTheInvitationFor)
	sc.Step(`^the invitation for "([^"]*)" has expired$`, s.theInvitationForHasExpired)
	sc.Step(`^"([^"]*)" should be an active "([^"]*)" member$`, s.shouldBeAnActiveMember)
	sc.Step(`^the invitation for "([^"]*)" should be "([^"]*)"$`, s.theInvitationForShouldBe)

	// Membership steps
	sc.Step(`^I change the role of "([^"]*)" to "([^"]*)"$`, s.iChangeTheRoleOfTo)
	sc.Step(`^I suspend "([^"]*)"$`, s.iSuspend)
	sc.Step(`^"([^"]*)" should be suspended$`, s.shouldBeSuspended)
	sc.Step(`^I fetch the organization$`, s.iFetchTheOrganization)
}

// Background steps

func (s *StepsContext) aBreeqaServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) aUserExists(email string) error {
	if _, ok := s.userIDs[email]; ok {
		return nil
	}

	id := uuid.NewString()
	fullName := strings.Split(email, "@")[0]
	if err := s.tc.DB.Exec(`
		INSERT INTO user_profiles (id, email, full_name) VALUES (?, ?, ?)
	`, id, email, fullName).Error; err != nil {
		return err
	}

	s.userIDs[email] = id
	return nil
}

func (s *StepsContext) anOrganizationExistsWithAdmin(slug, email string) error {
	if err := s.aUserExists(email); err != nil {
		return err
	}

	orgID := uuid.NewString()
	if err := s.tc.DB.Exec(`
		INSERT INTO organizations (id, name, slug, created_by) VALUES (?, ?, ?, ?)
	`, orgID, slug, slug+"-"+orgID[:8], s.userIDs[email]).Error; err != nil {
		return err
	}
	s.currentOrgID = orgID

	return s.memberRow(email, "admin")
}

func (s *StepsContext) isAnActiveMember(email, role string) error {
	if err := s.aUserExists(email); err != nil {
		return err
	}
	return s.memberRow(email, role)
}

func (s *StepsContext) memberRow(email, role string) error {
	return s.tc.DB.Exec(`
		INSERT INTO organization_members (id, organization_id, user_id, role, status)
		VALUES (?, ?, ?, ?, 'active')
	`, uuid.NewString(), s.currentOrgID, s.userIDs[email], role).Error
}

func (s *StepsContext) iAmAuthenticatedAs(email string) error {
	if err := s.aUserExists(email); err != nil {
		return err
	}

	authn := middleware.NewSessionAuthenticator([]byte(testSessionKey), config.Get())
	token, err := authn.IssueToken(s.userIDs[email], email, time.Hour)
	if err != nil {
		return err
	}

	s.authToken = token
	return nil
}

func (s *StepsContext) iAmNotAuthenticated() error {
	s.authToken = ""
	return nil
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

// doRequest issues an HTTP request against the running server, carrying
// the current session token if one is set.
func (s *StepsContext) doRequest(method, path, body string) error {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}
