package controllers

import (
	"net/http"

	"backend/config"
	"backend/repositories"

	"github.com/gin-gonic/gin"
)

// GET /notifications?unread=true
func ListNotifications(c *gin.Context) {
	uid := c.GetUint("userID")
	unreadOnly := c.Query("unread") == "true"

	repo := repositories.NewNotificationRepository(config.DB)
	notifications, err := repo.ListByUser(uid, unreadOnly, 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// POST /notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	uid := c.GetUint("userID")

	repo := repositories.NewNotificationRepository(config.DB)
	if err := repo.MarkRead(parseID(c, "id"), uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}
