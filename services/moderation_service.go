package services

import (
	"errors"
	"fmt"
	"time"

	"backend/models"

	"github.com/apex/log"
)

// AutoEscalateThreshold is how many unreviewed reports move an ACTIVE alert
// to UNDER_REVIEW without waiting for a moderator.
const AutoEscalateThreshold = 5

type ModerationService struct {
	alerts        AlertStore
	reports       ReportStore
	notifications NotificationStore
	lifecycle     *LifecycleService
	bus           *Bus
}

func NewModerationService(alerts AlertStore, reports ReportStore, notifications NotificationStore, lifecycle *LifecycleService, bus *Bus) *ModerationService {
	return &ModerationService{
		alerts:        alerts,
		reports:       reports,
		notifications: notifications,
		lifecycle:     lifecycle,
		bus:           bus,
	}
}

// SubmitReport files an abuse report against an alert and re-checks the
// escalation threshold. A reporter can flag a given alert once.
func (s *ModerationService) SubmitReport(alertID, reporterID uint, reason models.ReportReason, description string) (*models.Report, error) {
	alert, err := s.alerts.GetAlert(alertID)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		AlertID:     alert.ID,
		UserID:      reporterID,
		Reason:      reason,
		Description: description,
		Reviewed:    false,
		CreatedAt:   time.Now(),
	}
	created, err := s.reports.CreateReport(report)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, fmt.Errorf("%w: alert %d already reported by user %d", ErrDuplicateReport, alertID, reporterID)
	}

	s.bus.Publish(ReportFiled{Report: report})

	if err := s.checkEscalation(alert); err != nil {
		// The report itself is in; escalation can be retried by the
		// next report.
		log.WithError(err).WithField("alert", alert.ID).Warn("escalation check failed")
	}
	return report, nil
}

// checkEscalation counts unreviewed reports and escalates an ACTIVE alert
// once the threshold is met. Anything not ACTIVE is left alone: an alert
// already under review never re-escalates, and terminal alerts stay put.
func (s *ModerationService) checkEscalation(alert *models.Alert) error {
	if alert.Status != models.StatusActive {
		return nil
	}

	count, err := s.reports.CountUnreviewed(alert.ID)
	if err != nil {
		return err
	}
	if count < AutoEscalateThreshold {
		return nil
	}

	err = s.lifecycle.Transition(alert, models.StatusUnderReview, Actor{Role: ActorSystem})
	if errors.Is(err, ErrConflict) {
		// someone else moved it first; their state wins
		return nil
	}
	if err != nil {
		return err
	}

	s.notifyAuthor(alert, "Your alert is under review",
		fmt.Sprintf("Your alert %q received several community reports and is being reviewed by a moderator.", alert.Title))
	return nil
}

// ReviewReport closes a report. Approving it rejects the reported alert;
// dismissing it touches nothing but the review fields. Reputation effects
// of either outcome are deliberately not wired here.
func (s *ModerationService) ReviewReport(reportID, moderatorID uint, approve bool, notes string) (*models.Report, error) {
	report, err := s.reports.GetReport(reportID)
	if err != nil {
		return nil, err
	}
	if report.Reviewed {
		return nil, ErrAlreadyReviewed
	}

	now := time.Now()
	report.Reviewed = true
	report.ReviewerID = &moderatorID
	report.ReviewedAt = &now
	report.ReviewNotes = notes
	if err := s.reports.SaveReport(report); err != nil {
		return nil, err
	}

	if approve {
		alert, err := s.alerts.GetAlert(report.AlertID)
		if err != nil {
			return nil, err
		}
		if err := s.lifecycle.Transition(alert, models.StatusRejected, Actor{UserID: moderatorID, Role: ActorModerator}); err != nil {
			return nil, err
		}
		s.notifyAuthor(alert, "Your alert was removed",
			fmt.Sprintf("A moderator reviewed the reports against your alert %q and rejected it.", alert.Title))
	}
	return report, nil
}

func (s *ModerationService) notifyAuthor(alert *models.Alert, title, message string) {
	n := &models.Notification{
		UserID:          alert.UserID,
		Type:            models.NotifAlertStatus,
		Title:           title,
		Message:         message,
		RelatedEntityID: alert.ID,
		CreatedAt:       time.Now(),
	}
	if err := s.notifications.CreateNotification(n); err != nil {
		log.WithError(err).WithField("user", alert.UserID).Warn("author notification not persisted")
	}
}
