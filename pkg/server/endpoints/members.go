package endpoints

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/breeqa/breeqa-server/pkg/identity"
	"github.com/breeqa/breeqa-server/pkg/members"
	"github.com/breeqa/breeqa-server/pkg/rbac"
	"github.com/breeqa/breeqa-server/pkg/server"
)

// UpdateMemberRequest is the body for PATCH .../members/{user_id}
type UpdateMemberRequest struct {
	Role string `json:"role"`
}

// RegisterMembersEndpoints registers the member management endpoints
func RegisterMembersEndpoints(s *server.Server) {
	memberRouter := s.Router.PathPrefix("/organizations/{org_id}/members").Subrouter()
	memberRouter.Use(s.Session.Middleware)

	memberRouter.HandleFunc("", handleListMembers(s.Members)).Methods("GET")
	memberRouter.HandleFunc("/{user_id}", handleChangeMemberRole(s.Members)).Methods("PATCH")
	memberRouter.HandleFunc("/{user_id}", handleSuspendMember(s.Members)).Methods("DELETE")
}

func handleListMembers(svc *members.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		orgID := mux.Vars(r)["org_id"]
		includeInactive := r.URL.Query().Get("include_inactive") == "true"

		list, err := svc.List(r.Context(), id, orgID, includeInactive)
		if err != nil {
			respondWithMembersError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, list)
	}
}

func handleChangeMemberRole(svc *members.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		vars := mux.Vars(r)

		var req UpdateMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		role, err := rbac.RoleString(strings.ToLower(strings.TrimSpace(req.Role)))
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid role")
			return
		}

		member, err := svc.ChangeRole(r.Context(), id, vars["org_id"], vars["user_id"], role)
		if err != nil {
			respondWithMembersError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, member)
	}
}

func handleSuspendMember(svc *members.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		vars := mux.Vars(r)

		if err := svc.Suspend(r.Context(), id, vars["org_id"], vars["user_id"]); err != nil {
			respondWithMembersError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, map[string]string{"status": "suspended"})
	}
}
