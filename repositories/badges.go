package repositories

import (
	"backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// AwardIfAbsent leans on the (user_id, badge_type) unique index: the insert
// either lands or hits ON CONFLICT DO NOTHING. Exactly one concurrent
// caller sees true.
func (r *BadgeRepository) AwardIfAbsent(b *models.Badge) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(b)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *BadgeRepository) ListBadges(userID uint) ([]models.Badge, error) {
	var badges []models.Badge
	err := r.db.Where("user_id = ?", userID).Order("earned_at ASC").Find(&badges).Error
	return badges, err
}
