// Package audit provides audit logging for Breeqa operations.
//
// This package implements structured audit logging for security-relevant
// operations such as authentication attempts, permission checks, and
// membership changes.
//
// # Event Types
//
// The package defines event types for various operations:
//
//   - Authentication events (success/failure)
//   - Permission check events
//   - Invitation lifecycle events (created, accepted, revoked, expired)
//   - Member role change events
//   - Member suspension events
//
// # Usage
//
//	audit.Log(audit.CheckEvent{
//		UserID:         userID,
//		OrganizationID: orgID,
//		Permission:     "users:invite",
//		Allowed:        allowed,
//	})
//
// Audit events are logged in RFC5424 syslog format suitable for security
// monitoring and compliance requirements, and optionally persisted to a
// dedicated database when AUDIT_DATABASE_URL is set.
package audit
