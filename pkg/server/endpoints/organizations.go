package endpoints

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/breeqa/breeqa-server/pkg/identity"
	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
	"github.com/breeqa/breeqa-server/pkg/server"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreateOrganizationRequest is the body for POST /organizations
type CreateOrganizationRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// RegisterOrganizationsEndpoints registers the organization endpoints
func RegisterOrganizationsEndpoints(s *server.Server) {
	orgRouter := s.Router.PathPrefix("/organizations").Subrouter()
	orgRouter.Use(s.Session.Middleware)

	orgRouter.HandleFunc("", handleCreateOrganization(s.Organizations)).Methods("POST")
	orgRouter.HandleFunc("", handleListOrganizations(s.Organizations)).Methods("GET")
	orgRouter.HandleFunc("/{org_id}", handleGetOrganization(s.Organizations, s.Memberships)).Methods("GET")
}

func handleCreateOrganization(organizations store.OrganizationsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req CreateOrganizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Slug = strings.TrimSpace(strings.ToLower(req.Slug))
		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}
		if !slugPattern.MatchString(req.Slug) {
			respondWithError(w, http.StatusBadRequest, "slug must be lowercase letters, digits and hyphens")
			return
		}

		org := &model.Organization{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
			CreatedBy:   id.UserID,
		}
		if err := organizations.Create(org, id.UserID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithData(w, http.StatusCreated, org)
	}
}

func handleListOrganizations(organizations store.OrganizationsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		orgs, err := organizations.ListForUser(id.UserID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, orgs)
	}
}

func handleGetOrganization(organizations store.OrganizationsStore, memberships store.MembershipsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		orgID := mux.Vars(r)["org_id"]

		role, err := memberships.ResolveRole(id.UserID, orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		// Non-members get 404, not 403: organization ids stay unguessable
		if !rbac.HasPermission(role, "org:view") {
			respondWithError(w, http.StatusNotFound, "not found")
			return
		}

		org, err := organizations.Fetch(orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, org)
	}
}
