package models

import "time"

type BadgeType string

const (
	BadgeFirstAlert      BadgeType = "FIRST_ALERT"
	BadgeAlerts10        BadgeType = "ALERTS_10"
	BadgeAlerts50        BadgeType = "ALERTS_50"
	BadgeAlerts100       BadgeType = "ALERTS_100"
	BadgeHelpfulReporter BadgeType = "HELPFUL_REPORTER"
	BadgeTrustedUser     BadgeType = "TRUSTED_USER"
	BadgeCommunityHero   BadgeType = "COMMUNITY_HERO"
	BadgeVerifiedAlerts  BadgeType = "VERIFIED_ALERTS"
	BadgeActiveCommenter BadgeType = "ACTIVE_COMMENTER"
	BadgeRouteExpert     BadgeType = "ROUTE_EXPERT"
)

// Badge is a one-time milestone award. The unique index makes
// repeated awarding of the same badge impossible at the store level.
type Badge struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;uniqueIndex:idx_badge_user_type"`
	BadgeType BadgeType `gorm:"size:30;uniqueIndex:idx_badge_user_type"`
	EarnedAt  time.Time
}
