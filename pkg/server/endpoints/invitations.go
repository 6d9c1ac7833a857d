package endpoints

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/breeqa/breeqa-server/pkg/identity"
	"github.com/breeqa/breeqa-server/pkg/invite"
	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
	"github.com/breeqa/breeqa-server/pkg/server"
)

// CreateInvitationRequest is the body for POST .../invitations
type CreateInvitationRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// InvitationPreview is the public view of an invitation, shown on the
// accept page before the user signs in. The token holder already knows
// the token; everything else stays minimal.
type InvitationPreview struct {
	OrganizationName string    `json:"organization_name"`
	InviterName      string    `json:"inviter_name,omitempty"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// RegisterInvitationsEndpoints registers the invitation endpoints
func RegisterInvitationsEndpoints(s *server.Server) {
	orgRouter := s.Router.PathPrefix("/organizations/{org_id}/invitations").Subrouter()
	orgRouter.Use(s.Session.Middleware)

	orgRouter.HandleFunc("", handleCreateInvitation(s.Invites)).Methods("POST")
	orgRouter.HandleFunc("", handleListInvitations(s.Invites)).Methods("GET")
	orgRouter.HandleFunc("/{invitation_id}", handleRevokeInvitation(s.Invites)).Methods("DELETE")

	// Token lookup is public: the accept page renders before sign-in
	s.Router.HandleFunc("/invitations/{token}", handleGetInvitation(s.Invites)).Methods("GET")

	acceptRouter := s.Router.PathPrefix("/invitations/{token}/accept").Subrouter()
	acceptRouter.Use(s.Session.Middleware)
	acceptRouter.HandleFunc("", handleAcceptInvitation(s.Invites)).Methods("POST")
}

// RegisterUserInvitationsEndpoint registers the endpoint listing the
// authenticated user's own pending invitations.
func RegisterUserInvitationsEndpoint(s *server.Server) {
	userRouter := s.Router.PathPrefix("/user/invitations").Subrouter()
	userRouter.Use(s.Session.Middleware)
	userRouter.HandleFunc("", handleListUserInvitations(s.Invites)).Methods("GET")
}

func handleCreateInvitation(svc *invite.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		orgID := mux.Vars(r)["org_id"]

		var req CreateInvitationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		role, err := rbac.RoleString(strings.ToLower(strings.TrimSpace(req.Role)))
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid role")
			return
		}

		inv, err := svc.Create(r.Context(), id, orgID, req.Email, role)
		if err != nil {
			respondWithInviteError(w, err)
			return
		}

		respondWithData(w, http.StatusCreated, inv)
	}
}

func handleListInvitations(svc *invite.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		orgID := mux.Vars(r)["org_id"]

		invs, err := svc.ListPending(r.Context(), id, orgID)
		if err != nil {
			respondWithInviteError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, invs)
	}
}

func handleRevokeInvitation(svc *invite.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		vars := mux.Vars(r)

		if err := svc.Revoke(r.Context(), id, vars["org_id"], vars["invitation_id"]); err != nil {
			respondWithInviteError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, map[string]string{"status": "cancelled"})
	}
}

func handleGetInvitation(svc *invite.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := mux.Vars(r)["token"]

		inv, err := svc.Load(token)
		if err != nil {
			respondWithInviteError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, invitationPreview(inv))
	}
}

func handleAcceptInvitation(svc *invite.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		token := mux.Vars(r)["token"]

		member, err := svc.Accept(r.Context(), id, token)
		if err != nil {
			respondWithInviteError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, member)
	}
}

func handleListUserInvitations(svc *invite.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		invs, err := svc.ListForUser(r.Context(), id)
		if err != nil {
			respondWithInviteError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, invs)
	}
}

func invitationPreview(inv *model.OrganizationInvitation) InvitationPreview {
	preview := InvitationPreview{
		Email:     inv.Email,
		Role:      inv.Role.String(),
		ExpiresAt: inv.ExpiresAt,
	}
	if inv.Organization != nil {
		preview.OrganizationName = inv.Organization.Name
	}
	if inv.Inviter != nil {
		preview.InviterName = inv.Inviter.FullName
	}
	return preview
}
