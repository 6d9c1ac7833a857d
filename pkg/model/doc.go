// Package model defines the database models for Breeqa.
//
// This package contains GORM models that map to the Breeqa PostgreSQL
// schema.
//
// # Core Models
//
//   - Organization: a tenant
//   - UserProfile: a user account profile
//   - OrganizationMember: a user's membership in an organization
//   - OrganizationInvitation: a pending/settled invitation to join
//   - Project: a project inside an organization
//   - ProjectMember: a user's membership in a project
//
// # Database Schema
//
// The database uses PostgreSQL with the following key tables:
//
//   - organizations
//   - user_profiles
//   - organization_members: at most one active row per (org, user)
//   - organization_invitations: at most one pending row per (org, email)
//   - projects
//   - project_members
//
// Memberships are never hard-deleted; history is preserved through the
// status column.
package model
