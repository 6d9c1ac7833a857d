// Package rbac implements Breeqa's role-based access control model.
//
// The model is deliberately static: a fixed role catalog, a fixed
// permission table mapping "resource:action" keys to allowed roles, and
// a rank ordering over roles used for role-management decisions. All
// data is immutable process-wide and safe for concurrent readers.
//
// Every entry point (HTTP handler, CLI command, service) must go through
// HasPermission and CanManage rather than re-implementing role checks.
package rbac
