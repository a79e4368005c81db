package models

import "time"

type NotificationType string

const (
	NotifRouteAlert          NotificationType = "ROUTE_ALERT"
	NotifBadgeEarned         NotificationType = "BADGE_EARNED"
	NotifReputationMilestone NotificationType = "REPUTATION_MILESTONE"
	NotifAlertStatus         NotificationType = "ALERT_STATUS"
)

// Notification is a persisted row for the delivery collaborator to pick up.
// This backend only guarantees the row exists, not that it was delivered.
type Notification struct {
	ID              uint             `gorm:"primaryKey"`
	UserID          uint             `gorm:"index"`
	Type            NotificationType `gorm:"size:30"`
	Title           string           `gorm:"size:160"`
	Message         string           `gorm:"type:text"`
	RelatedEntityID uint
	Read            bool `gorm:"default:false"`
	CreatedAt       time.Time
	ReadAt          *time.Time
}
