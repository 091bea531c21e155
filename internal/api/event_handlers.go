package api

import (
	"net/http"
	"strconv"
)

// queryInt reads an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// @Summary      Get new events
// @Description  Journal entries after the given event ID, oldest first. Clients replay them to resynchronise cached queries after a reconnect.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        since  query     int  false  "ID of the last event received; 0 or omitted reads from the start"
// @Param        limit  query     int  false  "Page size, at most 100"
// @Success      200    {array}   database.Event
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /events [get]
func (s *Server) GetEventsHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	sinceID, ok := queryInt(r, "since")
	if !ok {
		writeError(w, http.StatusBadRequest, "since must be a non-negative event ID")
		return
	}
	limit, ok := queryInt(r, "limit")
	if !ok {
		writeError(w, http.StatusBadRequest, "limit must be a non-negative number")
		return
	}

	events, err := s.store.GetEventsSince(r.Context(), id.UserID, sinceID, int(limit))
	if err != nil {
		s.logger.Error("failed to load events", "user_id", id.UserID, "since", sinceID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve events")
		return
	}

	writeJSON(w, http.StatusOK, events)
}
