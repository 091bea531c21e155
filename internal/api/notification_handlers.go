package api

import (
	"net/http"
	"strconv"

	"svg-vault/internal/cache"

	"github.com/go-chi/chi/v5"
)

const notificationPageSize = 50

// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        unread  query     bool  false  "Only unread notifications"
// @Success      200     {array}   models.Notification
// @Failure      500     {object}  ErrorResponse
// @Router       /notifications [get]
func (s *Server) ListNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)
	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unread"))

	notifications, err := s.store.ListNotifications(r.Context(), id.UserID, unreadOnly, notificationPageSize)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load notifications")
		return
	}

	writeJSON(w, http.StatusOK, notifications)
}

// @Summary      Mark a notification read
// @Tags         notifications
// @Security     BearerAuth
// @Param        notificationId  path  int  true  "Notification ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /notifications/{notificationId}/read [post]
func (s *Server) MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	notificationID, err := strconv.ParseInt(chi.URLParam(r, "notificationId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	if err := s.store.MarkNotificationRead(r.Context(), notificationID, id.UserID); err != nil {
		s.writeStoreError(w, err, "Failed to update notification")
		return
	}

	s.cache.Invalidate(r.Context(), cache.MutationReadNotification, id.UserID)
	w.WriteHeader(http.StatusNoContent)
}
