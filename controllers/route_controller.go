package controllers

import (
	"net/http"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRouteRequest struct {
	Name      string   `json:"name" binding:"required"`
	OriginLat *float64 `json:"origin_lat" binding:"required"`
	OriginLng *float64 `json:"origin_lng" binding:"required"`
	DestLat   *float64 `json:"dest_lat" binding:"required"`
	DestLng   *float64 `json:"dest_lng" binding:"required"`
}

// POST /routes
func CreateRoute(c *gin.Context) {
	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route := models.Route{
		Name:      req.Name,
		OriginLat: req.OriginLat,
		OriginLng: req.OriginLng,
		DestLat:   req.DestLat,
		DestLng:   req.DestLng,
		Active:    true,
	}
	if err := config.DB.Create(&route).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, route)
}

// GET /routes
func ListRoutes(c *gin.Context) {
	var routes []models.Route
	if err := config.DB.Where("active = ?", true).Find(&routes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

type FavoriteRouteRequest struct {
	CustomName           string `json:"custom_name"`
	NotificationsEnabled *bool  `json:"notifications_enabled"`
}

// POST /routes/:id/favorite
func FavoriteRoute(c *gin.Context) {
	uid := c.GetUint("userID")
	routeID := parseID(c, "id")

	var req FavoriteRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var route models.Route
	if err := config.DB.First(&route, routeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	enabled := true
	if req.NotificationsEnabled != nil {
		enabled = *req.NotificationsEnabled
	}

	fav := models.FavoriteRoute{
		UserID:               uid,
		RouteID:              route.ID,
		CustomName:           req.CustomName,
		NotificationsEnabled: enabled,
		SavedAt:              time.Now(),
	}

	// Upsert by (user, route)
	err := config.DB.
		Where("user_id = ? AND route_id = ?", uid, route.ID).
		Assign(map[string]interface{}{
			"custom_name":           req.CustomName,
			"notifications_enabled": enabled,
		}).
		FirstOrCreate(&fav).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, fav)
}

// GET /favorites
func ListFavorites(c *gin.Context) {
	uid := c.GetUint("userID")

	var favorites []models.FavoriteRoute
	if err := config.DB.Where("user_id = ?", uid).Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// POST /favorites/:id/notifications
func ToggleFavoriteNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result := config.DB.Model(&models.FavoriteRoute{}).
		Where("id = ? AND user_id = ?", parseID(c, "id"), uid).
		Update("notifications_enabled", req.Enabled)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}

// touchFavoriteLastUsed is called when the mobile client reports the user
// started navigating a favorite.
func touchFavoriteLastUsed(db *gorm.DB, favID, userID uint) error {
	now := time.Now()
	return db.Model(&models.FavoriteRoute{}).
		Where("id = ? AND user_id = ?", favID, userID).
		Update("last_used", now).Error
}

// POST /favorites/:id/used
func MarkFavoriteUsed(c *gin.Context) {
	if err := touchFavoriteLastUsed(config.DB, parseID(c, "id"), c.GetUint("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite updated"})
}
