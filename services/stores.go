package services

import (
	"time"

	"backend/models"
)

// The services own their store contracts; GORM-backed implementations live
// in the repositories package, tests plug in in-memory fakes.

type AlertStore interface {
	GetAlert(id uint) (*models.Alert, error)
	SaveAlert(a *models.Alert) error
	// UpdateStatus flips status from "from" to "to" only if the row still
	// carries "from" (compare-and-swap). Returns false when another writer
	// got there first.
	UpdateStatus(id uint, from, to models.AlertStatus, at time.Time) (bool, error)
	// AddVotes atomically bumps the denormalized vote counters.
	AddVotes(id uint, upDelta, downDelta int) error
	ActiveExpiredBefore(t time.Time) ([]models.Alert, error)
	// TerminalOlderThan lists RESOLVED/EXPIRED alerts last touched before t.
	TerminalOlderThan(t time.Time) ([]models.Alert, error)
}

type ReportStore interface {
	// CreateReport inserts unless the (alert, reporter) pair already
	// exists; returns false for the duplicate case.
	CreateReport(r *models.Report) (bool, error)
	GetReport(id uint) (*models.Report, error)
	SaveReport(r *models.Report) error
	CountUnreviewed(alertID uint) (int64, error)
}

type StatsStore interface {
	GetOrCreateStats(userID uint) (*models.UserStatistics, error)
	SaveStats(s *models.UserStatistics) error
	TopByPoints(limit int) ([]models.UserStatistics, error)
}

type BadgeStore interface {
	// AwardIfAbsent inserts the badge unless the (user, badgeType) pair is
	// already held; returns false when it was. Atomic at the store level.
	AwardIfAbsent(b *models.Badge) (bool, error)
	ListBadges(userID uint) ([]models.Badge, error)
}

type NotificationStore interface {
	CreateNotification(n *models.Notification) error
}

type RouteStore interface {
	ActiveRoutes() ([]models.Route, error)
	FavoritesByRoute(routeID uint) ([]models.FavoriteRoute, error)
}

type VoteStore interface {
	GetVote(alertID, userID uint) (*models.AlertVote, error)
	SaveVote(v *models.AlertVote) error
	DeleteVote(v *models.AlertVote) error
}

type CommentStore interface {
	CreateComment(c *models.Comment) error
	CommentsByAlert(alertID uint) ([]models.Comment, error)
}
