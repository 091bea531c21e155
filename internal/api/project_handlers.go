package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"svg-vault/internal/cache"
	"svg-vault/internal/database"
	"svg-vault/internal/format"
	"svg-vault/internal/models"
	"svg-vault/internal/websocket"

	"github.com/go-chi/chi/v5"
)

type CreateProjectRequest struct {
	Name        string  `json:"name" example:"Icons"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color,omitempty" example:"bg-blue-500"`
	IsPublic    bool    `json:"is_public"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty" example:"bg-green-500"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

type ProjectResponse struct {
	models.ProjectWithStats
	IsOwner bool `json:"is_owner"`
}

type ProjectPropertiesResponse struct {
	Project    models.Project      `json:"project"`
	Owner      *models.Profile     `json:"owner,omitempty"`
	Stats      models.ProjectStats `json:"stats"`
	TotalSize  string              `json:"total_size" example:"24.0 KB"`
	RecentSVGs []models.SVGListing `json:"recent_svgs"`
}

type ForkResponse struct {
	Project  *models.Project `json:"project"`
	SVGCount int             `json:"svg_count"`
}

func (s *Server) generateProjectID(ctx context.Context) (string, error) {
	const maxRetries = 10

	for i := 0; i < maxRetries; i++ {
		id := database.NewID()
		exists, err := s.store.ProjectIDExists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to check for project existence: %w", err)
		}
		if !exists {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}

// @Summary      List own projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Name substring"
// @Param        sort  query     string  false  "name (default) or recent"
// @Success      200   {array}   models.ProjectWithStats
// @Failure      500   {object}  ErrorResponse
// @Router       /projects [get]
func (s *Server) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	projects, err := s.store.ListProjects(r.Context(), database.ProjectFilter{
		OwnerID: &id.UserID,
		Query:   r.URL.Query().Get("q"),
		Sort:    database.ParseSortKey(r.URL.Query().Get("sort"), database.SortName),
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to list projects")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateProjectRequest  true  "Project"
// @Success      201      {object}  models.Project
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /projects [post]
func (s *Server) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	var req CreateProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "Project name cannot be empty")
		return
	}

	projectID, err := s.generateProjectID(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "Failed to create project")
		return
	}

	project, err := s.store.CreateProject(r.Context(), database.CreateProjectParams{
		ID:          projectID,
		UserID:      id.UserID,
		Name:        name,
		Description: req.Description,
		Color:       req.Color,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to create project")
		return
	}

	s.afterMutation(r.Context(), cache.MutationCreateProject, project, id.UserID)
	writeJSON(w, http.StatusCreated, project)
}

// @Summary      Get a project
// @Description  A project is visible to its owner, and to everyone when public.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project ID"
// @Success      200        {object}  ProjectResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId} [get]
func (s *Server) GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	project, err := s.readableProject(r.Context(), chi.URLParam(r, "projectId"), id)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load project")
		return
	}

	stats, err := s.store.GetProjectWithStats(r.Context(), project.ID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load project")
		return
	}
	if stats == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{ProjectWithStats: *stats, IsOwner: project.UserID == id.UserID})
}

// @Summary      List a project's SVGs
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true   "Project ID"
// @Param        q          query     string  false  "Name substring"
// @Param        sort       query     string  false  "name (default), recent, views or downloads"
// @Success      200        {array}   models.SVGListing
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId}/svgs [get]
func (s *Server) ListProjectSVGsHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	project, err := s.readableProject(r.Context(), chi.URLParam(r, "projectId"), id)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load project")
		return
	}

	svgs, err := s.store.ListSVGs(r.Context(), database.SVGFilter{
		ProjectID: &project.ID,
		Query:     r.URL.Query().Get("q"),
		Sort:      database.ParseSortKey(r.URL.Query().Get("sort"), database.SortName),
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to list SVGs")
		return
	}

	writeJSON(w, http.StatusOK, svgs)
}

// @Summary      Project properties
// @Description  The project, its owner's profile, aggregate statistics and the five most recent SVGs.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project ID"
// @Success      200        {object}  ProjectPropertiesResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId}/properties [get]
func (s *Server) GetProjectPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	project, err := s.readableProject(r.Context(), chi.URLParam(r, "projectId"), id)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load project")
		return
	}

	stats, err := s.store.GetProjectWithStats(r.Context(), project.ID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load project statistics")
		return
	}
	if stats == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	owner, err := s.store.GetProfile(r.Context(), project.UserID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load project owner")
		return
	}

	recent, err := s.store.ListSVGs(r.Context(), database.SVGFilter{
		ProjectID: &project.ID,
		Sort:      database.SortRecent,
		Limit:     5,
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to list SVGs")
		return
	}

	writeJSON(w, http.StatusOK, ProjectPropertiesResponse{
		Project:    *project,
		Owner:      owner,
		Stats:      stats.ProjectStats,
		TotalSize:  format.Bytes(stats.TotalSize),
		RecentSVGs: recent,
	})
}

// @Summary      Update project settings
// @Description  Partial update of name, description, color and visibility. Owner only.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string                true  "Project ID"
// @Param        request    body      UpdateProjectRequest  true  "Fields to change"
// @Success      200        {object}  models.Project
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId} [patch]
func (s *Server) UpdateProjectHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	var req UpdateProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "Project name cannot be empty")
			return
		}
		req.Name = &name
	}

	project, err := s.store.UpdateProject(r.Context(), chi.URLParam(r, "projectId"), id.UserID, database.UpdateProjectParams{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to update project")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	s.afterMutation(r.Context(), cache.MutationUpdateProject, project, id.UserID)
	writeJSON(w, http.StatusOK, project)
}

// @Summary      Delete a project
// @Description  Deletes the project and its SVGs in one transaction. Stored files are removed once no SVG references them.
// @Tags         projects
// @Security     BearerAuth
// @Param        projectId  path  string  true  "Project ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{projectId} [delete]
func (s *Server) DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)
	projectID := chi.URLParam(r, "projectId")

	orphans, err := s.store.DeleteProject(r.Context(), projectID, id.UserID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to delete project")
		return
	}

	s.janitor.Release(context.WithoutCancel(r.Context()), orphans)
	s.afterMutation(r.Context(), cache.MutationDeleteProject, map[string]string{"id": projectID}, id.UserID)
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Fork a public project
// @Description  Copies the project and its SVG rows into a new private project owned by the caller, then notifies the original owner.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project ID"
// @Success      201        {object}  ForkResponse
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectId}/fork [post]
func (s *Server) ForkProjectHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	result, err := s.store.ForkProject(r.Context(), chi.URLParam(r, "projectId"), id.UserID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to fork project")
		return
	}
	projectForks.Inc()

	s.afterMutation(r.Context(), cache.MutationForkProject, result.Project, id.UserID)
	if result.Source.UserID != id.UserID {
		s.notifyFork(r.Context(), id.Email, result)
	}

	writeJSON(w, http.StatusCreated, ForkResponse{Project: result.Project, SVGCount: result.SVGCount})
}

// notifyFork tells the source owner about a fork. Failures are only logged.
func (s *Server) notifyFork(ctx context.Context, forkedBy string, result *database.ForkResult) {
	ctx = context.WithoutCancel(ctx)
	owner := result.Source.UserID

	notification, err := s.store.CreateNotification(ctx, database.CreateNotificationParams{
		UserID:  owner,
		Type:    models.NotificationTypeFork,
		Title:   "Project Forked",
		Message: fmt.Sprintf(`%s forked your project "%s"`, forkedBy, result.Source.Name),
		Data: map[string]string{
			"forked_by":           forkedBy,
			"original_project_id": result.Source.ID,
			"forked_project_id":   result.Project.ID,
		},
	})
	if err != nil {
		s.logger.Warn("failed to create fork notification", "project_id", result.Source.ID, "error", err)
		return
	}

	s.cache.Invalidate(ctx, cache.MutationNotify, owner)
	if data, err := json.Marshal(notification); err == nil {
		s.hub.Publish(owner, websocket.Message{Type: websocket.MessageNotification, Data: data})
	}
}
