package repositories

import (
	"errors"
	"time"

	"backend/models"
	"backend/services"
	"backend/utils"

	"gorm.io/gorm"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) GetAlert(id uint) (*models.Alert, error) {
	var alert models.Alert
	if err := r.db.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepository) SaveAlert(a *models.Alert) error {
	return r.db.Save(a).Error
}

// UpdateStatus is the per-alert compare-and-swap: the row only changes if
// it still carries the status the caller saw.
func (r *AlertRepository) UpdateStatus(id uint, from, to models.AlertStatus, at time.Time) (bool, error) {
	result := r.db.Model(&models.Alert{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{"status": to, "updated_at": at})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *AlertRepository) AddVotes(id uint, upDelta, downDelta int) error {
	updates := map[string]interface{}{}
	if upDelta != 0 {
		updates["upvotes"] = gorm.Expr("upvotes + ?", upDelta)
	}
	if downDelta != 0 {
		updates["downvotes"] = gorm.Expr("downvotes + ?", downDelta)
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Alert{}).Where("id = ?", id).Updates(updates).Error
}

func (r *AlertRepository) ActiveExpiredBefore(t time.Time) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.StatusActive, t).
		Find(&alerts).Error
	return alerts, err
}

func (r *AlertRepository) TerminalOlderThan(t time.Time) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.
		Where("status IN ? AND updated_at < ?", []models.AlertStatus{models.StatusResolved, models.StatusExpired}, t).
		Find(&alerts).Error
	return alerts, err
}

// ListActive returns active alerts, newest first, optionally within
// radiusKm of a point. The candidate set is filtered in memory; alert
// volume per region stays small enough that a geo index isn't worth it yet.
func (r *AlertRepository) ListActive(lat, lng *float64, radiusKm float64, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.
		Where("status = ?", models.StatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	if err != nil || lat == nil || lng == nil {
		return alerts, err
	}

	filtered := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if utils.HaversineNullable(lat, lng, a.Latitude, a.Longitude) <= radiusKm {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}
