package handlers

import (
	"net/http"

	"sihati/middleware"

	"github.com/gin-gonic/gin"
)

// ListMyNotifications returns the caller's notifications, newest first.
// Clients poll this; there is no push channel.
func ListMyNotifications(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)

	notifications, err := NotificationService.ListForUser(c.Request.Context(), callerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationRead flags one of the caller's notifications as read.
func MarkNotificationRead(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)
	notificationID := c.Param("notificationID")

	if err := NotificationService.MarkRead(c.Request.Context(), callerID, notificationID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}
