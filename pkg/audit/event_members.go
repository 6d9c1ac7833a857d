package audit

import "fmt"

// RoleChangeEvent represents a member role change audit event
type RoleChangeEvent struct {
	ActorID        string
	ClientIP       string
	OrganizationID string
	TargetUserID   string
	OldRole        string
	NewRole        string
	Success        bool
	ErrorMessage   string
}

func (e RoleChangeEvent) MessageID() string {
	return "role-change"
}

func (e RoleChangeEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s changed role of %s in organization %s from %s to %s", e.ActorID, e.TargetUserID, e.OrganizationID, e.OldRole, e.NewRole)
	}
	msg := fmt.Sprintf("%s tried to change role of %s in organization %s to %s", e.ActorID, e.TargetUserID, e.OrganizationID, e.NewRole)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RoleChangeEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RoleChangeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RoleChangeEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.ActorID,
		},
		SDIDOrg: {
			"id": e.OrganizationID,
		},
		SDIDSubject: {
			"user":     e.TargetUserID,
			"old_role": e.OldRole,
			"new_role": e.NewRole,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "role-change",
			"result":    result,
		},
	}
}

// SuspendEvent represents a member suspension audit event
type SuspendEvent struct {
	ActorID        string
	ClientIP       string
	OrganizationID string
	TargetUserID   string
	Success        bool
	ErrorMessage   string
}

func (e SuspendEvent) MessageID() string {
	return "suspend"
}

func (e SuspendEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s suspended %s in organization %s", e.ActorID, e.TargetUserID, e.OrganizationID)
	}
	msg := fmt.Sprintf("%s tried to suspend %s in organization %s", e.ActorID, e.TargetUserID, e.OrganizationID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e SuspendEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e SuspendEvent) Facility() int {
	return FacilityAuthPriv
}

func (e SuspendEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.ActorID,
		},
		SDIDOrg: {
			"id": e.OrganizationID,
		},
		SDIDSubject: {
			"user": e.TargetUserID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "suspend",
			"result":    result,
		},
	}
}
