package rest

import (
	"net/http"

	"sportshare-backend/internal/service"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := actorID(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	onlyUnread := r.URL.Query().Get("unread") == "1"
	notifications, err := h.notifications.ListNotifications(r.Context(), userID, onlyUnread)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, err := actorID(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.notifications.MarkAsRead(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]bool{"read": true})
}
