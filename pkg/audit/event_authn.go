package audit

import "fmt"

// AuthenticateEvent represents a session authentication audit event
type AuthenticateEvent struct {
	UserID       string
	Email        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string {
	return "authn"
}

func (e AuthenticateEvent) Message() string {
	subject := e.Email
	if subject == "" {
		subject = e.UserID
	}
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated", subject)
	}
	msg := fmt.Sprintf("%s failed to authenticate", subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AuthenticateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AuthenticateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	if e.Email != "" {
		sd[SDIDAuth]["email"] = e.Email
	}
	return sd
}
