// Package members implements organization member management: role
// changes and suspensions, guarded by the permission table and the role
// hierarchy.
package members
