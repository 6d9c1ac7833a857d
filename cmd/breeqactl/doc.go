// Package main implements breeqactl, the Breeqa server control CLI.
//
// Breeqa is a multi-tenant QA tracking server. Access inside each
// organization is governed by a fixed role catalog with ranked roles
// and a static permission table.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Storage interfaces and GORM implementations
//   - pkg/rbac: Role catalog, ranks and permission table
//   - pkg/invite: Invitation lifecycle service
//   - pkg/members: Membership management service
//   - pkg/mailer: Invitation email delivery
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The server is run via the breeqactl CLI:
//
//	# Run database migrations
//	breeqactl db migrate
//
//	# Bootstrap an organization with an admin member
//	breeqactl org create --name "Acme QA" --slug acme-qa --admin <user-id>
//
//	# Start the server
//	breeqactl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - BREEQA_SESSION_KEY: HMAC key for session tokens
//   - RESEND_API_KEY: Resend API key for invitation emails (optional)
//   - BREEQA_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8000)
package main
