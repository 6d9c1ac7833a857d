package endpoints

import (
	"github.com/breeqa/breeqa-server/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterOrganizationsEndpoints(srv)
	RegisterMembersEndpoints(srv)
	RegisterInvitationsEndpoints(srv)
	RegisterUserInvitationsEndpoint(srv)
	RegisterProjectsEndpoints(srv)
}
