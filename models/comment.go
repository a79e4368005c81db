package models

import "time"

type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	AlertID   uint   `gorm:"index"`
	UserID    uint   `gorm:"index"`
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
