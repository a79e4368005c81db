package controllers

import (
	"net/http"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UploadAlertImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /alerts/photo screens the photo through Rekognition before it
// lands in the bucket; the returned URL is meant for CreateAlert.
func UploadAlertImage(c *gin.Context) {
	var req UploadAlertImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	imageData, contentType, err := utils.DecodeBase64Image(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	labels, err := utils.DetectUnsafeImage(imageData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image screening failed", "detail": err.Error()})
		return
	}
	if len(labels) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Image rejected", "labels": labels})
		return
	}

	url, err := utils.UploadAlertImageToS3(imageData, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
