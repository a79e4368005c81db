package services

import (
	"fmt"
	"time"

	"backend/models"

	"github.com/apex/log"
)

// BadgeSpec is one catalog entry: the badge plus the statistics predicate
// that earns it.
type BadgeSpec struct {
	Type        models.BadgeType
	Name        string
	Description string
	Eligible    func(*models.UserStatistics) bool
}

// BadgeCatalog builds the fixed badge catalog. Called once at wiring time;
// the returned slice is never mutated afterwards.
func BadgeCatalog() []BadgeSpec {
	return []BadgeSpec{
		{models.BadgeFirstAlert, "First Alert", "Reported your first road hazard",
			func(s *models.UserStatistics) bool { return s.AlertsCreated >= 1 }},
		{models.BadgeAlerts10, "Road Watcher", "Reported 10 hazards",
			func(s *models.UserStatistics) bool { return s.AlertsCreated >= 10 }},
		{models.BadgeAlerts50, "Road Guardian", "Reported 50 hazards",
			func(s *models.UserStatistics) bool { return s.AlertsCreated >= 50 }},
		{models.BadgeAlerts100, "Road Sentinel", "Reported 100 hazards",
			func(s *models.UserStatistics) bool { return s.AlertsCreated >= 100 }},
		{models.BadgeHelpfulReporter, "Helpful Reporter", "5 of your abuse reports were confirmed",
			func(s *models.UserStatistics) bool { return s.ValidReports >= 5 }},
		{models.BadgeTrustedUser, "Trusted User", "Earned 500 reputation points",
			func(s *models.UserStatistics) bool { return s.ReputationPoints >= 500 }},
		{models.BadgeCommunityHero, "Community Hero", "Earned 2000 reputation points",
			func(s *models.UserStatistics) bool { return s.ReputationPoints >= 2000 }},
		{models.BadgeVerifiedAlerts, "Verified Reporter", "10 of your alerts were verified",
			func(s *models.UserStatistics) bool { return s.AlertsVerified >= 10 }},
		{models.BadgeActiveCommenter, "Active Commenter", "Posted 50 comments",
			func(s *models.UserStatistics) bool { return s.CommentsPosted >= 50 }},
		{models.BadgeRouteExpert, "Route Expert", "Received 100 upvotes",
			func(s *models.UserStatistics) bool { return s.UpvotesReceived >= 100 }},
	}
}

// levelBadges maps reputation levels to the badge unlocked on reaching them.
var levelBadges = map[int]models.BadgeType{
	5: models.BadgeTrustedUser,
	8: models.BadgeCommunityHero,
}

type BadgeService struct {
	stats         StatsStore
	badges        BadgeStore
	notifications NotificationStore
	catalog       []BadgeSpec
	byType        map[models.BadgeType]BadgeSpec
}

func NewBadgeService(stats StatsStore, badges BadgeStore, notifications NotificationStore) *BadgeService {
	catalog := BadgeCatalog()
	byType := make(map[models.BadgeType]BadgeSpec, len(catalog))
	for _, spec := range catalog {
		byType[spec.Type] = spec
	}
	return &BadgeService{
		stats:         stats,
		badges:        badges,
		notifications: notifications,
		catalog:       catalog,
		byType:        byType,
	}
}

// CheckAndAward evaluates every catalog predicate against the user's
// current statistics and awards whatever is newly earned. The store's
// insert-if-absent makes a concurrent double award impossible, and the
// notification is only written for the insert that actually happened, so
// nothing ever has to be rolled back.
func (s *BadgeService) CheckAndAward(userID uint) error {
	stats, err := s.stats.GetOrCreateStats(userID)
	if err != nil {
		return err
	}

	for _, spec := range s.catalog {
		if !spec.Eligible(stats) {
			continue
		}
		if err := s.award(userID, spec); err != nil {
			return err
		}
	}
	return nil
}

// CheckLevelBadges runs only from the ledger's level-up path and awards the
// badge tied to the level just reached, if any.
func (s *BadgeService) CheckLevelBadges(userID uint, level int) error {
	badgeType, ok := levelBadges[level]
	if !ok {
		return nil
	}
	return s.award(userID, s.byType[badgeType])
}

func (s *BadgeService) award(userID uint, spec BadgeSpec) error {
	badge := &models.Badge{
		UserID:    userID,
		BadgeType: spec.Type,
		EarnedAt:  time.Now(),
	}
	awarded, err := s.badges.AwardIfAbsent(badge)
	if err != nil {
		return err
	}
	if !awarded {
		return nil
	}

	n := &models.Notification{
		UserID:          userID,
		Type:            models.NotifBadgeEarned,
		Title:           fmt.Sprintf("Badge earned: %s", spec.Name),
		Message:         spec.Description,
		RelatedEntityID: badge.ID,
		CreatedAt:       time.Now(),
	}
	if err := s.notifications.CreateNotification(n); err != nil {
		log.WithError(err).WithFields(log.Fields{"user": userID, "badge": string(spec.Type)}).Warn("badge notification not persisted")
	}
	return nil
}

// ListBadges returns the user's earned badges.
func (s *BadgeService) ListBadges(userID uint) ([]models.Badge, error) {
	return s.badges.ListBadges(userID)
}
