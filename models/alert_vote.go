package models

import "time"

// AlertVote is one user's up- or downvote on an alert. Value is +1 or -1.
type AlertVote struct {
	ID        uint `gorm:"primaryKey"`
	AlertID   uint `gorm:"index;uniqueIndex:idx_vote_alert_user"`
	UserID    uint `gorm:"uniqueIndex:idx_vote_alert_user"`
	Value     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
