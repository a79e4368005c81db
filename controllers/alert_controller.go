package controllers

import (
	"net/http"
	"time"

	"backend/config"
	"backend/models"
	"backend/repositories"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CreateAlertRequest struct {
	Type        models.AlertType `json:"type" binding:"required"`
	Title       string           `json:"title" binding:"required,max=120"`
	Description string           `json:"description"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
	Location    string           `json:"location"`
	Severity    models.Severity  `json:"severity" binding:"required"`
	ExpiresAt   *time.Time       `json:"expires_at"`
	ImageURL    string           `json:"image_url"`
}

func CreateAlert(c *gin.Context) {
	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := services.Alerts.CreateAlert(services.CreateAlertInput{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Location:    req.Location,
		Severity:    req.Severity,
		ExpiresAt:   req.ExpiresAt,
		ImageURL:    req.ImageURL,
	}, c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

// GET /alerts?lat=..&lng=..&radius_km=..
func ListAlerts(c *gin.Context) {
	var lat, lng *float64
	if v, ok := parseFloatQuery(c, "lat"); ok {
		lat = &v
	}
	if v, ok := parseFloatQuery(c, "lng"); ok {
		lng = &v
	}
	radius := 10.0
	if v, ok := parseFloatQuery(c, "radius_km"); ok && v > 0 {
		radius = v
	}

	repo := repositories.NewAlertRepository(config.DB)
	alerts, err := repo.ListActive(lat, lng, radius, 200)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func GetAlert(c *gin.Context) {
	alert, err := services.Alerts.GetAlert(parseID(c, "id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

type UpdateAlertRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Location    *string          `json:"location"`
	Severity    *models.Severity `json:"severity"`
}

func UpdateAlert(c *gin.Context) {
	var req UpdateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := services.Alerts.UpdateAlert(parseID(c, "id"), c.GetUint("userID"), services.UpdateAlertInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Severity:    req.Severity,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func ResolveAlert(c *gin.Context) {
	alert, err := services.Alerts.ResolveAlert(parseID(c, "id"), c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// VerifyAlert is moderator-only (routes gate it).
func VerifyAlert(c *gin.Context) {
	alert, err := services.Alerts.VerifyAlert(parseID(c, "id"), c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

type StatusOverrideRequest struct {
	Status models.AlertStatus `json:"status" binding:"required"`
}

// OverrideAlertStatus lets a moderator force any state.
func OverrideAlertStatus(c *gin.Context) {
	var req StatusOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := services.Actor{UserID: c.GetUint("userID"), Role: services.ActorModerator}
	if c.GetString("role") == models.RoleAdmin {
		actor.Role = services.ActorAdmin
	}

	alert, err := services.Alerts.TransitionAlert(parseID(c, "id"), req.Status, actor)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

type VoteRequest struct {
	Value int `json:"value" binding:"required"` // +1 or -1
}

func VoteAlert(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := services.Alerts.Vote(parseID(c, "id"), c.GetUint("userID"), req.Value)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"upvotes": alert.Upvotes, "downvotes": alert.Downvotes})
}
