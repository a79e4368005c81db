package services

import (
	"fmt"
	"time"

	"backend/models"
)

type ActorRole string

const (
	ActorUser      ActorRole = "user"
	ActorModerator ActorRole = "moderator"
	ActorAdmin     ActorRole = "admin"
	// ActorSystem is the moderation engine or the sweeper acting on its own.
	ActorSystem ActorRole = "system"
)

// Actor is the already-authenticated identity performing a transition.
// Identity resolution happens at the HTTP edge; the lifecycle trusts it.
type Actor struct {
	UserID uint
	Role   ActorRole
}

// lifecycleTable lists the automated transitions. RESOLVED, REJECTED and
// EXPIRED are terminal for automated paths; moderators can override past it.
var lifecycleTable = map[models.AlertStatus][]models.AlertStatus{
	models.StatusActive: {
		models.StatusUnderReview,
		models.StatusResolved,
		models.StatusRejected,
		models.StatusExpired,
	},
	models.StatusUnderReview: {
		models.StatusRejected,
		models.StatusActive,
	},
}

func tableAllows(from, to models.AlertStatus) bool {
	for _, t := range lifecycleTable[from] {
		if t == to {
			return true
		}
	}
	return false
}

// LifecycleService is the sole owner of alert status changes.
type LifecycleService struct {
	alerts AlertStore
}

func NewLifecycleService(alerts AlertStore) *LifecycleService {
	return &LifecycleService{alerts: alerts}
}

// Transition moves an alert to target on behalf of actor. It either changes
// the row or returns an error; there is no silent no-op path.
//
// Authority: authors may resolve their own ACTIVE alert and nothing else;
// the system actor is bound to the lifecycle table; moderators and admins
// may force any state. The status write is a compare-and-swap on the status
// the caller saw, so of two concurrent actors exactly one wins and the
// loser gets ErrConflict.
func (s *LifecycleService) Transition(alert *models.Alert, target models.AlertStatus, actor Actor) error {
	switch actor.Role {
	case ActorModerator, ActorAdmin:
		// any target, not invariant-checked
	case ActorSystem:
		if !tableAllows(alert.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, alert.Status, target)
		}
	case ActorUser:
		if actor.UserID != alert.UserID {
			return fmt.Errorf("%w: not the author", ErrInvalidTransition)
		}
		if alert.Status != models.StatusActive || target != models.StatusResolved {
			return fmt.Errorf("%w: authors may only resolve an active alert", ErrInvalidTransition)
		}
	default:
		return fmt.Errorf("%w: unknown actor role %q", ErrInvalidTransition, actor.Role)
	}

	now := time.Now()
	ok, err := s.alerts.UpdateStatus(alert.ID, alert.Status, target, now)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: alert %d changed concurrently", ErrConflict, alert.ID)
	}

	alert.Status = target
	alert.UpdatedAt = now
	return nil
}

// CanEditContent reports whether the author may still edit title,
// description and the like: only while the alert is ACTIVE.
func (s *LifecycleService) CanEditContent(alert *models.Alert, userID uint) bool {
	return alert.UserID == userID && alert.Status == models.StatusActive
}
