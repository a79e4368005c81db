package repositories

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// GetVote returns nil without error when the user hasn't voted yet.
func (r *VoteRepository) GetVote(alertID, userID uint) (*models.AlertVote, error) {
	var vote models.AlertVote
	err := r.db.Where("alert_id = ? AND user_id = ?", alertID, userID).First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *VoteRepository) SaveVote(v *models.AlertVote) error {
	return r.db.Save(v).Error
}

func (r *VoteRepository) DeleteVote(v *models.AlertVote) error {
	return r.db.Delete(v).Error
}
