package repositories

import (
	"backend/models"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) CreateComment(c *models.Comment) error {
	return r.db.Create(c).Error
}

func (r *CommentRepository) CommentsByAlert(alertID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("alert_id = ?", alertID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}
