package audit

import "fmt"

// Invitation lifecycle operations
const (
	InvitationCreated  = "created"
	InvitationAccepted = "accepted"
	InvitationRevoked  = "revoked"
	InvitationExpired  = "expired"
)

// InvitationEvent represents an invitation lifecycle audit event
type InvitationEvent struct {
	Operation      string // one of the Invitation* constants
	ActorID        string
	ClientIP       string
	OrganizationID string
	Email          string
	Role           string
	Success        bool
	ErrorMessage   string
}

func (e InvitationEvent) MessageID() string {
	return "invitation"
}

func (e InvitationEvent) Message() string {
	if e.Success {
		switch e.Operation {
		case InvitationCreated:
			return fmt.Sprintf("%s invited %s to organization %s as %s", e.ActorID, e.Email, e.OrganizationID, e.Role)
		case InvitationAccepted:
			return fmt.Sprintf("%s accepted an invitation to organization %s as %s", e.ActorID, e.OrganizationID, e.Role)
		case InvitationRevoked:
			return fmt.Sprintf("%s revoked the invitation for %s to organization %s", e.ActorID, e.Email, e.OrganizationID)
		case InvitationExpired:
			return fmt.Sprintf("invitation for %s to organization %s expired", e.Email, e.OrganizationID)
		}
	}
	msg := fmt.Sprintf("%s failed to %s invitation for organization %s", e.ActorID, e.Operation, e.OrganizationID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e InvitationEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e InvitationEvent) Facility() int {
	return FacilityAuthPriv
}

func (e InvitationEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.ActorID,
		},
		SDIDOrg: {
			"id": e.OrganizationID,
		},
		SDIDSubject: {
			"email": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "invitation-" + e.Operation,
			"result":    result,
		},
	}
	if e.Role != "" {
		sd[SDIDSubject]["role"] = e.Role
	}
	return sd
}
