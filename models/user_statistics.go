package models

import "time"

// UserStatistics carries the per-user counters and reputation score.
// Only the reputation service writes it; everybody else reads.
type UserStatistics struct {
	ID                uint `gorm:"primaryKey"`
	UserID            uint `gorm:"uniqueIndex;not null"`
	AlertsCreated     int
	AlertsVerified    int
	CommentsPosted    int
	UpvotesReceived   int
	DownvotesReceived int
	ReportsSubmitted  int
	ValidReports      int
	ReputationPoints  int `gorm:"index"` // never below zero
	Level             int `gorm:"default:1"`
	LastAlertAt       *time.Time
	LastCommentAt     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
