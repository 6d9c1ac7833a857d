package audit

import "fmt"

// CheckEvent represents a permission check audit event
type CheckEvent struct {
	UserID         string
	ClientIP       string
	OrganizationID string
	Permission     string
	Allowed        bool
}

func (e CheckEvent) MessageID() string {
	return "check"
}

func (e CheckEvent) Message() string {
	if e.Allowed {
		return fmt.Sprintf("%s checked permission %s in organization %s: allowed", e.UserID, e.Permission, e.OrganizationID)
	}
	return fmt.Sprintf("%s checked permission %s in organization %s: denied", e.UserID, e.Permission, e.OrganizationID)
}

func (e CheckEvent) Severity() Severity {
	return SeverityInfo
}

func (e CheckEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CheckEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Allowed {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDOrg: {
			"id": e.OrganizationID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation":  "check",
			"permission": e.Permission,
			"result":     result,
		},
	}
}
