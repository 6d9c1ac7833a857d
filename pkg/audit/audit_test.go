package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := AuthenticateEvent{
		UserID:   "user-1",
		Email:    "admin@example.com",
		ClientIP: "192.168.1.1",
		Success:  true,
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.Contains(output, "breeqa") {
		t.Error("Expected app name 'breeqa' in output")
	}
	if !strings.Contains(output, "authn") {
		t.Error("Expected message ID 'authn' in output")
	}
	if !strings.Contains(output, "admin@example.com") {
		t.Error("Expected email in output")
	}
	if !strings.Contains(output, "192.168.1.1") {
		t.Error("Expected client IP in output")
	}
	if !strings.Contains(output, "successfully authenticated") {
		t.Error("Expected success message in output")
	}
}

func TestAuthenticateEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     AuthenticateEvent
		wantMsg   string
		wantSev   Severity
		wantFac   int
		wantMsgID string
	}{
		{
			name: "successful authentication",
			event: AuthenticateEvent{
				UserID:   "user-1",
				Email:    "admin@example.com",
				ClientIP: "10.0.0.1",
				Success:  true,
			},
			wantMsg:   "admin@example.com successfully authenticated",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "authn",
		},
		{
			name: "failed authentication",
			event: AuthenticateEvent{
				UserID:       "user-1",
				Email:        "admin@example.com",
				ClientIP:     "10.0.0.1",
				Success:      false,
				ErrorMessage: "token is expired",
			},
			wantMsg:   "admin@example.com failed to authenticate: token is expired",
			wantSev:   SeverityWarning,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "authn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Message(); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.event.Severity(); got != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", got, tt.wantSev)
			}
			if got := tt.event.Facility(); got != tt.wantFac {
				t.Errorf("Facility() = %v, want %v", got, tt.wantFac)
			}
			if got := tt.event.MessageID(); got != tt.wantMsgID {
				t.Errorf("MessageID() = %q, want %q", got, tt.wantMsgID)
			}
		})
	}
}

func TestCheckEvent(t *testing.T) {
	allowed := CheckEvent{
		UserID:         "user-1",
		OrganizationID: "org-1",
		Permission:     "users:invite",
		Allowed:        true,
	}
	if got := allowed.Message(); !strings.Contains(got, "allowed") {
		t.Errorf("Message() = %q, want allowed", got)
	}
	if got := allowed.StructuredData()[SDIDAction]["result"]; got != "success" {
		t.Errorf("result = %q, want success", got)
	}

	denied := CheckEvent{
		UserID:         "user-2",
		OrganizationID: "org-1",
		Permission:     "users:manage",
		Allowed:        false,
	}
	if got := denied.Message(); !strings.Contains(got, "denied") {
		t.Errorf("Message() = %q, want denied", got)
	}
	if got := denied.StructuredData()[SDIDAction]["result"]; got != "failure" {
		t.Errorf("result = %q, want failure", got)
	}
}

func TestInvitationEventMessages(t *testing.T) {
	created := InvitationEvent{
		Operation:      InvitationCreated,
		ActorID:        "user-1",
		OrganizationID: "org-1",
		Email:          "bob@example.com",
		Role:           "developer",
		Success:        true,
	}
	want := "user-1 invited bob@example.com to organization org-1 as developer"
	if got := created.Message(); got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}

	revoked := InvitationEvent{
		Operation:      InvitationRevoked,
		ActorID:        "user-1",
		OrganizationID: "org-1",
		Email:          "bob@example.com",
		Success:        true,
	}
	if got := revoked.Message(); !strings.Contains(got, "revoked") {
		t.Errorf("Message() = %q, want revoked", got)
	}

	failed := InvitationEvent{
		Operation:      InvitationCreated,
		ActorID:        "user-2",
		OrganizationID: "org-1",
		Email:          "bob@example.com",
		Success:        false,
		ErrorMessage:   "permission denied",
	}
	if got := failed.Severity(); got != SeverityWarning {
		t.Errorf("Severity() = %v, want %v", got, SeverityWarning)
	}
	if got := failed.Message(); !strings.Contains(got, "permission denied") {
		t.Errorf("Message() = %q, want error message", got)
	}
}

func TestRoleChangeEvent(t *testing.T) {
	event := RoleChangeEvent{
		ActorID:        "user-1",
		OrganizationID: "org-1",
		TargetUserID:   "user-2",
		OldRole:        "viewer",
		NewRole:        "developer",
		Success:        true,
	}
	want := "user-1 changed role of user-2 in organization org-1 from viewer to developer"
	if got := event.Message(); got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}

	sd := event.StructuredData()
	if got := sd[SDIDSubject]["new_role"]; got != "developer" {
		t.Errorf("new_role = %q, want developer", got)
	}
}

func TestSuspendEventSeverity(t *testing.T) {
	event := SuspendEvent{
		ActorID:        "user-1",
		OrganizationID: "org-1",
		TargetUserID:   "user-2",
		Success:        true,
	}
	if got := event.Severity(); got != SeverityNotice {
		t.Errorf("Severity() = %v, want %v", got, SeverityNotice)
	}
}

func TestStructuredDataEscaping(t *testing.T) {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"email": `bob"quoted"@example.com`,
		},
	}
	out := formatStructuredData(sd)
	if !strings.Contains(out, `\"quoted\"`) {
		t.Errorf("expected escaped quotes in %q", out)
	}
}
