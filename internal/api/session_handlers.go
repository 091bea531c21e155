package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// @Summary      List active sessions
// @Description  Gets a list of all active sessions for the currently authenticated user, which can be displayed to allow them to manage devices.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Session
// @Failure      401  {object}  RedirectResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /sessions [get]
func (s *Server) ListSessionsHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	sessions, err := s.store.ListSessionsForUser(r.Context(), id.UserID)
	if err != nil {
		s.logger.Error("failed to list sessions", "user_id", id.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve sessions")
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

// @Summary      Terminate a specific session
// @Description  Terminates (logs out) a specific session by its ID. A user can only terminate their own sessions.
// @Tags         sessions
// @Security     BearerAuth
// @Param        sessionId  path      string  true  "ID of the session to terminate" format(uuid)
// @Success      204
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /sessions/{sessionId} [delete]
func (s *Server) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	deleted, err := s.store.DeleteSessionByID(r.Context(), sessionID, id.UserID)
	if err != nil {
		s.logger.Error("failed to delete session", "session_id", sessionID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Terminate all sessions (Log out everywhere)
// @Description  Terminates all active sessions for the currently authenticated user, effectively logging them out from all other devices.
// @Tags         sessions
// @Security     BearerAuth
// @Success      204
// @Failure      500  {object}  ErrorResponse
// @Router       /sessions/terminate_all [post]
func (s *Server) TerminateAllSessionsHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	if err := s.store.DeleteAllSessionsForUser(r.Context(), id.UserID); err != nil {
		s.logger.Error("failed to terminate sessions", "user_id", id.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to terminate all sessions")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
