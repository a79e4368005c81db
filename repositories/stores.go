package repositories

import (
	"backend/services"

	"gorm.io/gorm"
)

// NewStores builds the full GORM-backed store set for services.Init.
func NewStores(db *gorm.DB) services.Stores {
	return services.Stores{
		Alerts:        NewAlertRepository(db),
		Reports:       NewReportRepository(db),
		Stats:         NewStatsRepository(db),
		Badges:        NewBadgeRepository(db),
		Notifications: NewNotificationRepository(db),
		Routes:        NewRouteRepository(db),
		Votes:         NewVoteRepository(db),
		Comments:      NewCommentRepository(db),
	}
}
