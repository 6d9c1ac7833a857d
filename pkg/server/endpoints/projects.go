package endpoints

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/breeqa/breeqa-server/pkg/identity"
	"github.com/breeqa/breeqa-server/pkg/model"
	"github.com/breeqa/breeqa-server/pkg/rbac"
	"github.com/breeqa/breeqa-server/pkg/server"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

// CreateProjectRequest is the body for POST .../projects
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// AddProjectMemberRequest is the body for POST .../projects/{project_id}/members
type AddProjectMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// RegisterProjectsEndpoints registers the project endpoints
func RegisterProjectsEndpoints(s *server.Server) {
	projectRouter := s.Router.PathPrefix("/organizations/{org_id}/projects").Subrouter()
	projectRouter.Use(s.Session.Middleware)

	projectRouter.HandleFunc("", handleCreateProject(s.Projects, s.Memberships)).Methods("POST")
	projectRouter.HandleFunc("", handleListProjects(s.Projects, s.Memberships)).Methods("GET")
	projectRouter.HandleFunc("/{project_id}", handleGetProject(s.Projects, s.Memberships)).Methods("GET")
	projectRouter.HandleFunc("/{project_id}/members", handleListProjectMembers(s.Projects, s.Memberships)).Methods("GET")
	projectRouter.HandleFunc("/{project_id}/members", handleAddProjectMember(s.Projects, s.Memberships)).Methods("POST")
	projectRouter.HandleFunc("/{project_id}/members/{user_id}", handleRemoveProjectMember(s.Projects, s.Memberships)).Methods("DELETE")
}

// requirePermission resolves the acting role in the organization and
// checks one permission key. Writes the error response itself and
// reports whether the request may proceed.
func requirePermission(w http.ResponseWriter, r *http.Request, memberships store.MembershipsStore, orgID, permission string) (*identity.Identity, bool) {
	id, ok := identity.Get(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}

	role, err := memberships.ResolveRole(id.UserID, orgID)
	if err != nil {
		respondWithStoreError(w, err)
		return nil, false
	}
	if !rbac.HasPermission(role, permission) {
		respondWithError(w, http.StatusForbidden, "permission denied")
		return nil, false
	}
	return id, true
}

func handleCreateProject(projects store.ProjectsStore, memberships store.MembershipsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID := mux.Vars(r)["org_id"]
		id, ok := requirePermission(w, r, memberships, orgID, "projects:create")
		if !ok {
			return
		}

		var req CreateProjectRequest
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

		project := &model.Project{
			ID:             uuid.NewString(),
			OrganizationID: orgID,
			Name:           req.Name,
			Slug:           req.Slug,
			Description:    req.Description,
			Status:         model.ProjectStatusActive,
			Icon:           req.Icon,
			Color:          req.Color,
			CreatedBy:      id.UserID,
		}
		if err := projects.Create(project); err != nil {
			respondWithStoreError(w, err)
			return
		}

		// The creator leads the project they created
		if err := projects.AddMember(&model.ProjectMember{
			ID:        uuid.NewString(),
			ProjectID: project.ID,
			UserID:    id.UserID,
			Role:      model.ProjectRoleLead,
		}); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithData(w, http.StatusCreated, project)
	}
}

func handleListProjects(projects store.ProjectsStore, memberships store.MembershipsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID := mux.Vars(r)["org_id"]
		if _, ok := requirePermission(w, r, memberships, orgID, "projects:view"); !ok {
			return
		}

		list, err := projects.List(orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, list)
	}
}

func handleGetProject(projects store.ProjectsStore, memberships store.MembershipsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		orgID := vars["org_id"]
		if _, ok := requirePermission(w, r, memberships, orgID, "projects:view"); !ok {
			return
		}

		project, err := projects.Fetch(vars["project_id"])
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if project.OrganizationID != orgID {
			respondWithError(w, http.StatusNotFound, "not found")
			return
		}

		respondWithData(w, http.StatusOK, project)
	}
}

func handleListProjectMembers(projects store.ProjectsStore, memberships store.MembershipsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		orgID := vars["org_id"]
		if _, ok := requirePermission(w, r, memberships, orgID, "projects:view"); !ok {
			return
		}

		project, err := projects.Fetch(vars["project_id"])
		if err != nil || project.OrganizationID != orgID {
			respondWithError(w, http.StatusNotFound, "not found")
			return
		}

		list, err := projects.ListMembers(project.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, list)
	}
}

func handleAddProjectMember(projects store.ProjectsStore, memberships store.MembershipsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		orgID := vars["org_id"]
		id, ok := requirePermission(w, r, memberships, orgID, "projects:manage")
		if !ok {
			return
		}

		var req AddProjectMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.UserID == "" {
			respondWithError(w, http.StatusBadRequest, "user_id is required")
			return
		}
		role := req.Role
		if role == "" {
			role = model.ProjectRoleObserver
		}
		if role != model.ProjectRoleLead && role != model.ProjectRoleTester && role != model.ProjectRoleObserver {
			respondWithError(w, http.StatusBadRequest, "invalid project role")
			return
		}

		project, err := projects.Fetch(vars["project_id"])
		if err != nil || project.OrganizationID != orgID {
			respondWithError(w, http.StatusNotFound, "not found")
			return
		}

		// Only active organization members can join a project
		memberRole, err := memberships.ResolveRole(req.UserID, orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if memberRole == nil {
			respondWithError(w, http.StatusBadRequest, "user is not an active member of the organization")
			return
		}

		member := &model.ProjectMember{
			ID:        uuid.NewString(),
			ProjectID: project.ID,
			UserID:    req.UserID,
			Role:      role,
			InvitedBy: id.UserID,
		}
		if err := projects.AddMember(member); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithData(w, http.StatusCreated, member)
	}
}

func handleRemoveProjectMember(projects store.ProjectsStore, memberships store.MembershipsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		orgID := vars["org_id"]
		if _, ok := requirePermission(w, r, memberships, orgID, "projects:manage"); !ok {
			return
		}

		project, err := projects.Fetch(vars["project_id"])
		if err != nil || project.OrganizationID != orgID {
			respondWithError(w, http.StatusNotFound, "not found")
			return
		}

		if err := projects.RemoveMember(project.ID, vars["user_id"]); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithData(w, http.StatusOK, map[string]string{"status": "removed"})
	}
}
