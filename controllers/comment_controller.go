package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// POST /alerts/:id/comments
func CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := services.Comments.CreateComment(parseID(c, "id"), c.GetUint("userID"), req.Content)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GET /alerts/:id/comments
func ListComments(c *gin.Context) {
	comments, err := services.Comments.CommentsByAlert(parseID(c, "id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
