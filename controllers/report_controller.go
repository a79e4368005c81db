package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type SubmitReportRequest struct {
	Reason      models.ReportReason `json:"reason" binding:"required"`
	Description string              `json:"description"`
}

// POST /alerts/:id/reports
func SubmitReport(c *gin.Context) {
	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := services.Moderation.SubmitReport(parseID(c, "id"), c.GetUint("userID"), req.Reason, req.Description)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

type ReviewReportRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

// POST /reports/:id/review, moderator only
func ReviewReport(c *gin.Context) {
	var req ReviewReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := services.Moderation.ReviewReport(parseID(c, "id"), c.GetUint("userID"), req.Approve, req.Notes)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
