package services

import (
	"fmt"
	"time"

	"backend/models"

	"github.com/apex/log"
)

// AdjustReason names a platform action with a reputation effect. The point
// table is fixed; nothing at runtime changes it.
type AdjustReason string

const (
	ReasonAlertCreated     AdjustReason = "ALERT_CREATED"
	ReasonUpvoteReceived   AdjustReason = "UPVOTE_RECEIVED"
	ReasonDownvoteReceived AdjustReason = "DOWNVOTE_RECEIVED"
	ReasonCommentPosted    AdjustReason = "COMMENT_POSTED"
	ReasonAlertVerified    AdjustReason = "ALERT_VERIFIED"
	ReasonValidReport      AdjustReason = "VALID_REPORT"
	ReasonReportRejected   AdjustReason = "REPORT_REJECTED"
	// ReasonReportFiled only bumps the submission counter.
	ReasonReportFiled AdjustReason = "REPORT_FILED"
)

var reputationDeltas = map[AdjustReason]int{
	ReasonAlertCreated:     10,
	ReasonUpvoteReceived:   5,
	ReasonDownvoteReceived: -3,
	ReasonCommentPosted:    2,
	ReasonAlertVerified:    15,
	ReasonValidReport:      20,
	ReasonReportRejected:   -10,
	ReasonReportFiled:      0,
}

// levelThresholds are the points needed to leave level 1..8; above the last
// one everything is level 9.
var levelThresholds = []int{100, 250, 500, 1000, 2000, 4000, 8000, 16000}

// LevelForPoints maps a point total to its level bucket. It depends on
// points alone and is non-decreasing in them.
func LevelForPoints(points int) int {
	level := 1
	for _, t := range levelThresholds {
		if points >= t {
			level++
		}
	}
	return level
}

// ReputationService owns every write to UserStatistics. All updates for one
// user go through that user's mutex, so a counter bump and its point delta
// are never observed half-applied.
type ReputationService struct {
	stats         StatsStore
	notifications NotificationStore
	badges        *BadgeService
	locks         *keyedMutex
}

func NewReputationService(stats StatsStore, notifications NotificationStore, badges *BadgeService) *ReputationService {
	return &ReputationService{
		stats:         stats,
		notifications: notifications,
		badges:        badges,
		locks:         newKeyedMutex(),
	}
}

// Adjust applies the fixed delta for reason to the user's ledger, floors
// points at zero, bumps the matching counter and recomputes the level. A
// level increase persists a REPUTATION_MILESTONE notification and runs the
// level-badge hook.
func (s *ReputationService) Adjust(userID uint, reason AdjustReason) (*models.UserStatistics, error) {
	delta, ok := reputationDeltas[reason]
	if !ok {
		return nil, fmt.Errorf("unknown reputation reason %q", reason)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	stats, err := s.stats.GetOrCreateStats(userID)
	if err != nil {
		return nil, err
	}

	points := stats.ReputationPoints + delta
	if points < 0 {
		points = 0
	}
	stats.ReputationPoints = points
	bumpCounter(stats, reason)

	oldLevel := stats.Level
	stats.Level = LevelForPoints(points)

	if err := s.stats.SaveStats(stats); err != nil {
		return nil, err
	}

	if stats.Level > oldLevel {
		s.announceLevel(userID, stats.Level)
		if err := s.badges.CheckLevelBadges(userID, stats.Level); err != nil {
			log.WithError(err).WithField("user", userID).Warn("level badge check failed")
		}
	}
	return stats, nil
}

func bumpCounter(stats *models.UserStatistics, reason AdjustReason) {
	now := time.Now()
	switch reason {
	case ReasonAlertCreated:
		stats.AlertsCreated++
		stats.LastAlertAt = &now
	case ReasonUpvoteReceived:
		stats.UpvotesReceived++
	case ReasonDownvoteReceived:
		stats.DownvotesReceived++
	case ReasonCommentPosted:
		stats.CommentsPosted++
		stats.LastCommentAt = &now
	case ReasonAlertVerified:
		stats.AlertsVerified++
	case ReasonValidReport:
		stats.ValidReports++
	case ReasonReportFiled:
		stats.ReportsSubmitted++
	}
}

func (s *ReputationService) announceLevel(userID uint, level int) {
	n := &models.Notification{
		UserID:    userID,
		Type:      models.NotifReputationMilestone,
		Title:     fmt.Sprintf("You reached level %d!", level),
		Message:   fmt.Sprintf("Your contributions keep the roads safer. You are now a level %d reporter.", level),
		CreatedAt: time.Now(),
	}
	if err := s.notifications.CreateNotification(n); err != nil {
		log.WithError(err).WithField("user", userID).Warn("milestone notification not persisted")
	}
}

// HandleEvent is the ledger's subscription to the domain bus: every event
// with a reputation effect lands here, followed by a full badge check for
// the affected user.
func (s *ReputationService) HandleEvent(e Event) {
	switch ev := e.(type) {
	case AlertCreated:
		s.apply(ev.Alert.UserID, ReasonAlertCreated)
	case AlertVerified:
		s.apply(ev.Alert.UserID, ReasonAlertVerified)
	case CommentPosted:
		s.apply(ev.AuthorID, ReasonCommentPosted)
	case UpvoteReceived:
		s.apply(ev.RecipientID, ReasonUpvoteReceived)
	case DownvoteReceived:
		s.apply(ev.RecipientID, ReasonDownvoteReceived)
	case ReportFiled:
		s.apply(ev.Report.UserID, ReasonReportFiled)
	}
}

func (s *ReputationService) apply(userID uint, reason AdjustReason) {
	if _, err := s.Adjust(userID, reason); err != nil {
		log.WithError(err).WithFields(log.Fields{"user": userID, "reason": string(reason)}).Error("reputation adjust failed")
		return
	}
	if err := s.badges.CheckAndAward(userID); err != nil {
		log.WithError(err).WithField("user", userID).Warn("badge check failed")
	}
}
