package models

import "time"

type FavoriteRoute struct {
	ID                   uint `gorm:"primaryKey"`
	UserID               uint `gorm:"index;uniqueIndex:idx_fav_user_route"`
	RouteID              uint `gorm:"index;uniqueIndex:idx_fav_user_route"`
	CustomName           string `gorm:"size:120"`
	NotificationsEnabled bool   `gorm:"default:true"`
	SavedAt              time.Time
	LastUsed             *time.Time
}
