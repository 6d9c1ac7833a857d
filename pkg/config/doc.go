// Package config provides configuration management for the Breeqa server.
//
// This package handles loading and validating server configuration
// from environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - BREEQA_SESSION_KEY: Session token signing key
//   - BREEQA_INVITATION_TTL_HOURS: Invitation validity window
//   - BREEQA_TRUSTED_PROXIES: CIDR ranges of trusted proxies
//   - DATABASE_URL: Database connection
//   - RESEND_API_KEY: Email provider credentials
//   - PORT: Server listen port
package config
