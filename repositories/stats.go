package repositories

import (
	"backend/models"

	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) GetOrCreateStats(userID uint) (*models.UserStatistics, error) {
	stats := models.UserStatistics{UserID: userID, Level: 1}
	err := r.db.Where("user_id = ?", userID).FirstOrCreate(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) SaveStats(s *models.UserStatistics) error {
	return r.db.Save(s).Error
}

func (r *StatsRepository) TopByPoints(limit int) ([]models.UserStatistics, error) {
	var stats []models.UserStatistics
	err := r.db.Order("reputation_points DESC").Limit(limit).Find(&stats).Error
	return stats, err
}
