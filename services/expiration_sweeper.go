package services

import (
	"errors"
	"fmt"
	"time"

	"backend/models"

	"github.com/apex/log"
)

// RetentionDays is how long RESOLVED/EXPIRED alerts stay before they show
// up in the cleanup report. Nothing deletes them; the report is for ops.
const RetentionDays = 30

// SweepResult is the outcome of one expiration pass. Failures accumulate
// per alert instead of aborting the sweep.
type SweepResult struct {
	Checked int
	Expired int
	Skipped int
	Errors  []error
}

// ExpirationSweeper applies time-based transitions. The scheduler
// collaborator owns the cron; this type only knows what one pass does.
type ExpirationSweeper struct {
	alerts    AlertStore
	lifecycle *LifecycleService
	bus       *Bus
}

func NewExpirationSweeper(alerts AlertStore, lifecycle *LifecycleService, bus *Bus) *ExpirationSweeper {
	return &ExpirationSweeper{alerts: alerts, lifecycle: lifecycle, bus: bus}
}

// SweepExpired expires every ACTIVE alert whose expiresAt is in the past.
// The status is re-read right before the transition and the transition
// itself is a compare-and-swap, so an alert a moderator just moved is
// skipped rather than overwritten.
func (s *ExpirationSweeper) SweepExpired(now time.Time) SweepResult {
	var result SweepResult

	candidates, err := s.alerts.ActiveExpiredBefore(now)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("listing expired alerts: %w", err))
		return result
	}

	for i := range candidates {
		result.Checked++

		alert, err := s.alerts.GetAlert(candidates[i].ID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("alert %d: %w", candidates[i].ID, err))
			continue
		}
		if alert.Status != models.StatusActive {
			result.Skipped++
			continue
		}

		err = s.lifecycle.Transition(alert, models.StatusExpired, Actor{Role: ActorSystem})
		if errors.Is(err, ErrConflict) {
			// concurrent moderation won; absorb
			result.Skipped++
			continue
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("alert %d: %w", alert.ID, err))
			continue
		}

		result.Expired++
		s.bus.Publish(AlertExpired{Alert: alert})
	}

	log.WithFields(log.Fields{
		"checked": result.Checked,
		"expired": result.Expired,
		"skipped": result.Skipped,
		"errors":  len(result.Errors),
	}).Info("expiration sweep finished")
	return result
}

// CleanupOld reports RESOLVED/EXPIRED alerts past the retention window.
// It never deletes; retention policy is decided elsewhere.
func (s *ExpirationSweeper) CleanupOld(now time.Time) ([]models.Alert, error) {
	cutoff := now.AddDate(0, 0, -RetentionDays)
	old, err := s.alerts.TerminalOlderThan(cutoff)
	if err != nil {
		return nil, err
	}
	if len(old) > 0 {
		log.WithField("count", len(old)).Info("alerts past retention window")
	}
	return old, nil
}
