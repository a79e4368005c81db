package repositories

import (
	"backend/models"

	"gorm.io/gorm"
)

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// ActiveRoutes loads the full candidate set; the dispatcher scans it per
// alert. No pagination contract here.
func (r *RouteRepository) ActiveRoutes() ([]models.Route, error) {
	var routes []models.Route
	err := r.db.Where("active = ?", true).Find(&routes).Error
	return routes, err
}

func (r *RouteRepository) FavoritesByRoute(routeID uint) ([]models.FavoriteRoute, error) {
	var favorites []models.FavoriteRoute
	err := r.db.Where("route_id = ?", routeID).Find(&favorites).Error
	return favorites, err
}
