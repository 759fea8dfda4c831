// File: handlers/notification.go
package handlers

import (
	"errors"
	"net/http"

	notificationRepo "telecare/database/repository/notification"
	"telecare/middleware"
	"telecare/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the caller's in-app notification feed.
type NotificationHandler struct {
	Svc notification.NotificationService
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// ListNotificationsHandler lists the caller's notifications, newest first.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	actorID, _ := middleware.Actor(c)
	items, err := h.Svc.ListForUser(actorID)
	if err != nil {
		writeNotificationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items})
}

// MarkReadHandler flags one notification as read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	actorID, _ := middleware.Actor(c)
	if err := h.Svc.MarkRead(c.Param("id"), actorID); err != nil {
		writeNotificationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "marked read"})
}

// MarkAllReadHandler flags all of the caller's notifications as read.
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	actorID, _ := middleware.Actor(c)
	if err := h.Svc.MarkAllRead(actorID); err != nil {
		writeNotificationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "all marked read"})
}

func writeNotificationError(c *gin.Context, err error) {
	if errors.Is(err, notificationRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed", "details": err.Error()})
}
