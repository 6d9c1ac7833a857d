// Package server provides the HTTP server for the Breeqa API.
//
// This package implements the core HTTP server that handles all Breeqa REST API
// requests. It uses gorilla/mux for routing and provides middleware for
// authentication and request handling.
//
// # Server Setup
//
//	srv, err := server.NewServer(db, cfg, logger, "", "8080")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Stores: membership, invitation, organization, project, user storage
//   - Invites/Members: domain services behind the endpoints
//   - Session: session token validation middleware
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers the API endpoints including:
//
//   - /organizations - Organization management
//   - /organizations/{org_id}/members - Member management
//   - /organizations/{org_id}/invitations - Invitation management
//   - /organizations/{org_id}/projects - Project management
//   - /invitations/{token} - Invitation lookup and acceptance
//   - /whoami - Token introspection
//   - /status - Health check
package server
