package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bmaBack/internal/models"
	"bmaBack/internal/services"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

// GetPendingNotifications returns every queued notification still flagged
// for delivery. The delivery agent polls this endpoint.
func (h *NotificationHandler) GetPendingNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Service.ListPending(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch pending notifications", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(notifications)
}

// MarkSent acknowledges a delivered notification. Acknowledging an already
// delivered notification succeeds; an unknown id is a 404.
func (h *NotificationHandler) MarkSent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid notification ID", http.StatusBadRequest)
		return
	}

	err = h.Service.MarkDelivered(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotificationNotFound) {
			http.Error(w, "Notification not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update notification", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
