package api

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"svg-vault/internal/cache"
	"svg-vault/internal/database"
	"svg-vault/internal/format"
	"svg-vault/internal/models"
	"svg-vault/internal/sanitize"
	"svg-vault/internal/storage"
	"svg-vault/internal/upload"

	"github.com/go-chi/chi/v5"
)

type SVGResponse struct {
	models.SVGListing
	IsOwner  bool   `json:"is_owner"`
	Size     string `json:"size" example:"1.5 KB"`
	Uploaded string `json:"uploaded" example:"2 hours ago"`
}

type UpdateSVGRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	ProjectID   *string   `json:"project_id,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

type FavoriteResponse struct {
	Favorited bool `json:"favorited"`
}

type SVGContentResponse struct {
	ID     string `json:"id"`
	Markup string `json:"markup"`
}

// @Summary      SVG preview
// @Description  Loads an SVG the caller may see. Every load counts as one view.
// @Tags         svgs
// @Produce      json
// @Security     BearerAuth
// @Param        svgId  path      string  true  "SVG ID"
// @Success      200    {object}  SVGResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /svgs/{svgId} [get]
func (s *Server) GetSVGHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	svg, err := s.readableSVG(r.Context(), chi.URLParam(r, "svgId"), id)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load SVG")
		return
	}

	views, err := s.store.IncrementViews(r.Context(), svg.ID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load SVG")
		return
	}
	svg.Views = views
	svgViews.Inc()
	s.cache.Invalidate(r.Context(), cache.MutationViewSVG, svg.UserID)

	writeJSON(w, http.StatusOK, SVGResponse{
		SVGListing: *svg,
		IsOwner:    svg.UserID == id.UserID,
		Size:       format.Bytes(svg.FileSize),
		Uploaded:   format.RelativeTime(svg.CreatedAt, time.Now()),
	})
}

// @Summary      Update SVG settings
// @Description  Edits name, description, tags or moves the SVG to another project the caller owns.
// @Tags         svgs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        svgId    path      string            true  "SVG ID"
// @Param        request  body      UpdateSVGRequest  true  "Fields to change"
// @Success      200      {object}  models.SVG
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /svgs/{svgId} [patch]
func (s *Server) UpdateSVGHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	var req UpdateSVGRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "SVG name cannot be empty")
			return
		}
		req.Name = &name
	}
	if req.Tags != nil {
		tags := upload.NormalizeTags(*req.Tags)
		req.Tags = &tags
	}

	svg, err := s.store.UpdateSVG(r.Context(), chi.URLParam(r, "svgId"), id.UserID, database.UpdateSVGParams{
		Name:        req.Name,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Tags:        req.Tags,
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to update SVG")
		return
	}

	s.afterMutation(r.Context(), cache.MutationUpdateSVG, svg, id.UserID)
	writeJSON(w, http.StatusOK, svg)
}

// @Summary      Delete an SVG
// @Tags         svgs
// @Security     BearerAuth
// @Param        svgId  path  string  true  "SVG ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /svgs/{svgId} [delete]
func (s *Server) DeleteSVGHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)
	svgID := chi.URLParam(r, "svgId")

	orphan, err := s.store.DeleteSVG(r.Context(), svgID, id.UserID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to delete SVG")
		return
	}

	if orphan != "" {
		s.janitor.Release(context.WithoutCancel(r.Context()), []string{orphan})
	}
	s.afterMutation(r.Context(), cache.MutationDeleteSVG, map[string]string{"id": svgID}, id.UserID)
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Toggle favorite
// @Description  Flips the owner's favorite flag and returns the stored value.
// @Tags         svgs
// @Produce      json
// @Security     BearerAuth
// @Param        svgId  path      string  true  "SVG ID"
// @Success      200    {object}  FavoriteResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /svgs/{svgId}/favorite [post]
func (s *Server) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)
	svgID := chi.URLParam(r, "svgId")

	favorited, err := s.store.ToggleFavorite(r.Context(), svgID, id.UserID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to update favorite")
		return
	}

	resp := FavoriteResponse{Favorited: favorited}
	s.afterMutation(r.Context(), cache.MutationToggleFavorite, map[string]interface{}{"id": svgID, "favorited": favorited}, id.UserID)
	writeJSON(w, http.StatusOK, resp)
}

// @Summary      Download an SVG
// @Description  Streams the stored file as an attachment. Every download is counted.
// @Tags         svgs
// @Produce      image/svg+xml
// @Security     BearerAuth
// @Param        svgId  path      string  true  "SVG ID"
// @Success      200    {file}    file
// @Failure      404    {object}  ErrorResponse
// @Failure      502    {object}  ErrorResponse
// @Router       /svgs/{svgId}/download [get]
func (s *Server) DownloadSVGHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	svg, err := s.readableSVG(r.Context(), chi.URLParam(r, "svgId"), id)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load SVG")
		return
	}

	blob, err := s.buckets.SVGs.Get(r.Context(), svg.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "File not found")
			return
		}
		s.logger.Error("failed to read svg blob", "svg_id", svg.ID, "path", svg.FilePath, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to download SVG")
		return
	}
	defer blob.Close()

	if _, err := s.store.IncrementDownloads(r.Context(), svg.ID); err != nil {
		s.writeStoreError(w, err, "Failed to download SVG")
		return
	}
	svgDownloads.Inc()
	s.cache.Invalidate(r.Context(), cache.MutationDownloadSVG, svg.UserID)

	w.Header().Set("Content-Type", upload.SVGContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": upload.DownloadName(svg.Name)}))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; sandbox")
	if svg.FileSize > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(svg.FileSize, 10))
	}

	if _, err := io.Copy(w, blob); err != nil {
		s.logger.Warn("svg download interrupted", "svg_id", svg.ID, "error", err)
	}
}

// @Summary      Sanitized SVG markup
// @Description  Returns the stored SVG with scripts, event handlers and external references removed, safe to inline.
// @Tags         svgs
// @Produce      json
// @Security     BearerAuth
// @Param        svgId  path      string  true  "SVG ID"
// @Success      200    {object}  SVGContentResponse
// @Failure      404    {object}  ErrorResponse
// @Failure      502    {object}  ErrorResponse
// @Router       /svgs/{svgId}/content [get]
func (s *Server) GetSVGContentHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	svg, err := s.readableSVG(r.Context(), chi.URLParam(r, "svgId"), id)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load SVG")
		return
	}

	blob, err := s.buckets.SVGs.Get(r.Context(), svg.FilePath)
	if err != nil {
		s.logger.Error("failed to read svg blob", "svg_id", svg.ID, "path", svg.FilePath, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to load SVG")
		return
	}
	defer blob.Close()

	markup, err := sanitize.SVG(io.LimitReader(blob, s.config.Upload.MaxSVGBytes))
	if err != nil {
		s.logger.Warn("stored svg could not be sanitized", "svg_id", svg.ID, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to load SVG")
		return
	}

	writeJSON(w, http.StatusOK, SVGContentResponse{ID: svg.ID, Markup: string(markup)})
}

// @Summary      Search SVGs
// @Description  Searches the caller's SVGs, or every public SVG with scope=public. Tags are an intersection.
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Param        q        query     string  false  "Name substring"
// @Param        tags     query     string  false  "Comma separated tags, all required"
// @Param        project  query     string  false  "Project ID"
// @Param        sort     query     string  false  "recent (default), name, views or downloads"
// @Param        scope    query     string  false  "mine (default) or public"
// @Success      200      {array}   models.SVGListing
// @Failure      400      {object}  ErrorResponse
// @Router       /search [get]
func (s *Server) SearchHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)
	query := r.URL.Query()

	filter := database.SVGFilter{
		Query: query.Get("q"),
		Tags:  upload.NormalizeTags(query["tags"]),
		Sort:  database.ParseSortKey(query.Get("sort"), database.SortRecent),
	}
	if project := query.Get("project"); project != "" {
		filter.ProjectID = &project
	}

	switch query.Get("scope") {
	case "", "mine":
		filter.OwnerID = &id.UserID
	case "public":
		filter.PublicOnly = true
	default:
		writeError(w, http.StatusBadRequest, "Invalid scope, must be 'mine' or 'public'")
		return
	}

	svgs, err := s.store.ListSVGs(r.Context(), filter)
	if err != nil {
		s.writeStoreError(w, err, "Failed to search SVGs")
		return
	}

	writeJSON(w, http.StatusOK, svgs)
}

// @Summary      Explore public projects
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Name substring"
// @Param        sort  query     string  false  "trending (default), recent, name, views or downloads"
// @Success      200   {array}   models.ProjectWithStats
// @Router       /explore/projects [get]
func (s *Server) ExploreProjectsHandler(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context(), database.ProjectFilter{
		PublicOnly: true,
		Query:      r.URL.Query().Get("q"),
		Sort:       database.ParseSortKey(r.URL.Query().Get("sort"), database.SortTrending),
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to load public projects")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// @Summary      Explore public SVGs
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Name substring"
// @Param        sort  query     string  false  "trending (default), recent, name, views or downloads"
// @Success      200   {array}   models.SVGListing
// @Router       /explore/svgs [get]
func (s *Server) ExploreSVGsHandler(w http.ResponseWriter, r *http.Request) {
	svgs, err := s.store.ListSVGs(r.Context(), database.SVGFilter{
		PublicOnly: true,
		Query:      r.URL.Query().Get("q"),
		Sort:       database.ParseSortKey(r.URL.Query().Get("sort"), database.SortTrending),
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to load public SVGs")
		return
	}

	writeJSON(w, http.StatusOK, svgs)
}
