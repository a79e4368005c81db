package repositories

import (
	"errors"

	"backend/models"
	"backend/services"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// CreateReport inserts the report unless the (alert, reporter) unique index
// already holds a row. ON CONFLICT DO NOTHING keeps the check-and-insert
// atomic; zero rows affected means a duplicate.
func (r *ReportRepository) CreateReport(report *models.Report) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(report)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ReportRepository) GetReport(id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) SaveReport(report *models.Report) error {
	return r.db.Save(report).Error
}

func (r *ReportRepository) CountUnreviewed(alertID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).
		Where("alert_id = ? AND reviewed = ?", alertID, false).
		Count(&count).Error
	return count, err
}
