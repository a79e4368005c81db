package services

// Stores bundles every persistence contract the services need. The
// GORM-backed set comes from the repositories package; tests wire fakes.
type Stores struct {
	Alerts        AlertStore
	Reports       ReportStore
	Stats         StatsStore
	Badges        BadgeStore
	Notifications NotificationStore
	Routes        RouteStore
	Votes         VoteStore
	Comments      CommentStore
}

// Package-level service set, wired once from main. Controllers reach the
// core through these.
var (
	Events     *Bus
	Lifecycle  *LifecycleService
	Moderation *ModerationService
	Reputation *ReputationService
	Badges     *BadgeService
	GeoNotify  *GeoNotificationService
	Alerts     *AlertService
	Comments   *CommentService
	Sweeper    *ExpirationSweeper
	Users      *UserService
)

// Init wires every service plus the event subscriptions. Must run after
// config.InitDB.
func Init(s Stores) {
	Events = NewBus()
	Lifecycle = NewLifecycleService(s.Alerts)
	Badges = NewBadgeService(s.Stats, s.Badges, s.Notifications)
	Reputation = NewReputationService(s.Stats, s.Notifications, Badges)
	Moderation = NewModerationService(s.Alerts, s.Reports, s.Notifications, Lifecycle, Events)
	GeoNotify = NewGeoNotificationService(s.Routes, s.Notifications)
	Alerts = NewAlertService(s.Alerts, s.Votes, Lifecycle, Events)
	Comments = NewCommentService(s.Alerts, s.Comments, Events)
	Sweeper = NewExpirationSweeper(s.Alerts, Lifecycle, Events)
	Users = NewUserService(s.Stats, s.Badges)

	Events.Subscribe(Reputation.HandleEvent)
	Events.Subscribe(GeoNotify.HandleEvent)
}
