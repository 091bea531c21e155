package api

import (
	"context"
	"errors"
	"net/http"

	"svg-vault/internal/auth"
	"svg-vault/internal/cache"
	"svg-vault/internal/database"
	"svg-vault/internal/models"

	"github.com/google/uuid"
)

// readableProject loads a project the caller may see: their own, or any
// public one. Anything else looks like a missing project.
func (s *Server) readableProject(ctx context.Context, projectID string, id auth.Identity) (*models.Project, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || (project.UserID != id.UserID && !project.IsPublic) {
		return nil, database.ErrProjectNotFound
	}
	return project, nil
}

// readableSVG loads an SVG the caller owns or whose project is public.
func (s *Server) readableSVG(ctx context.Context, svgID string, id auth.Identity) (*models.SVGListing, error) {
	svg, err := s.store.GetSVGListing(ctx, svgID)
	if err != nil {
		return nil, err
	}
	if svg == nil || (svg.UserID != id.UserID && !svg.ProjectIsPublic) {
		return nil, database.ErrSVGNotFound
	}
	return svg, nil
}

// writeStoreError answers with the status a store error maps to. Unknown
// errors are logged and reported with the generic message.
func (s *Server) writeStoreError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, database.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, database.ErrSVGNotFound):
		writeError(w, http.StatusNotFound, "SVG not found")
	case errors.Is(err, database.ErrNotificationNotFound):
		writeError(w, http.StatusNotFound, "Notification not found")
	case errors.Is(err, database.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, database.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, database.ErrProjectNotPublic):
		writeError(w, http.StatusForbidden, "Only public projects can be forked")
	case errors.Is(err, database.ErrInvalidColor):
		writeError(w, http.StatusBadRequest, "Invalid project color")
	case errors.Is(err, context.Canceled):
		// client went away; nobody reads the response
	default:
		s.logger.Error(message, "error", err)
		writeError(w, http.StatusInternalServerError, message)
	}
}

// afterMutation invalidates the queries m makes stale for every affected
// user and journals the change for clients that sync via /events.
func (s *Server) afterMutation(ctx context.Context, m cache.Mutation, payload interface{}, userIDs ...uuid.UUID) {
	s.cache.Invalidate(ctx, m, userIDs...)
	for _, userID := range userIDs {
		if err := s.store.LogEvent(ctx, userID, string(m), payload); err != nil {
			s.logger.Warn("failed to journal event", "event", m, "user_id", userID, "error", err)
		}
	}
}
