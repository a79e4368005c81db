package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/utils"
)

// CreateAlertInput carries already-bound fields from the API layer.
type CreateAlertInput struct {
	Type        models.AlertType
	Title       string
	Description string
	Latitude    *float64
	Longitude   *float64
	Location    string
	Severity    models.Severity
	ExpiresAt   *time.Time
	ImageURL    string
}

// UpdateAlertInput is the author-editable content. Nil means "leave as is".
type UpdateAlertInput struct {
	Title       *string
	Description *string
	Location    *string
	Severity    *models.Severity
}

type AlertService struct {
	alerts    AlertStore
	votes     VoteStore
	lifecycle *LifecycleService
	bus       *Bus
}

func NewAlertService(alerts AlertStore, votes VoteStore, lifecycle *LifecycleService, bus *Bus) *AlertService {
	return &AlertService{alerts: alerts, votes: votes, lifecycle: lifecycle, bus: bus}
}

// CreateAlert persists a new ACTIVE alert and publishes AlertCreated, which
// feeds the reputation ledger and the route fan-out.
func (s *AlertService) CreateAlert(input CreateAlertInput, authorID uint) (*models.Alert, error) {
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, errors.New("latitude and longitude must be given together")
	}
	if input.Latitude != nil && !utils.ValidCoordinates(*input.Latitude, *input.Longitude) {
		return nil, errors.New("coordinates out of range")
	}

	now := time.Now()
	alert := &models.Alert{
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Location:    input.Location,
		Severity:    input.Severity,
		Status:      models.StatusActive,
		ImageURL:    input.ImageURL,
		UserID:      authorID,
		ExpiresAt:   input.ExpiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.alerts.SaveAlert(alert); err != nil {
		return nil, err
	}

	s.bus.Publish(AlertCreated{Alert: alert})
	return alert, nil
}

func (s *AlertService) GetAlert(id uint) (*models.Alert, error) {
	return s.alerts.GetAlert(id)
}

// UpdateAlert lets the author edit content while the alert is still ACTIVE.
func (s *AlertService) UpdateAlert(alertID, authorID uint, input UpdateAlertInput) (*models.Alert, error) {
	alert, err := s.alerts.GetAlert(alertID)
	if err != nil {
		return nil, err
	}
	if !s.lifecycle.CanEditContent(alert, authorID) {
		return nil, ErrInvalidTransition
	}

	if input.Title != nil {
		alert.Title = *input.Title
	}
	if input.Description != nil {
		alert.Description = *input.Description
	}
	if input.Location != nil {
		alert.Location = *input.Location
	}
	if input.Severity != nil {
		alert.Severity = *input.Severity
	}
	alert.UpdatedAt = time.Now()

	if err := s.alerts.SaveAlert(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// ResolveAlert is the author closing their own hazard.
func (s *AlertService) ResolveAlert(alertID, authorID uint) (*models.Alert, error) {
	alert, err := s.alerts.GetAlert(alertID)
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.Transition(alert, models.StatusResolved, Actor{UserID: authorID, Role: ActorUser}); err != nil {
		return nil, err
	}
	return alert, nil
}

// TransitionAlert exposes the lifecycle to moderator endpoints.
func (s *AlertService) TransitionAlert(alertID uint, target models.AlertStatus, actor Actor) (*models.Alert, error) {
	alert, err := s.alerts.GetAlert(alertID)
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.Transition(alert, target, actor); err != nil {
		return nil, err
	}
	return alert, nil
}

// VerifyAlert marks an alert as confirmed by a moderator and credits the
// author. Verifying twice is a no-op for reputation.
func (s *AlertService) VerifyAlert(alertID uint, moderatorID uint) (*models.Alert, error) {
	alert, err := s.alerts.GetAlert(alertID)
	if err != nil {
		return nil, err
	}
	if alert.Verified {
		return alert, nil
	}

	alert.Verified = true
	alert.UpdatedAt = time.Now()
	if err := s.alerts.SaveAlert(alert); err != nil {
		return nil, err
	}

	s.bus.Publish(AlertVerified{Alert: alert})
	return alert, nil
}

// Vote records an up- (+1) or downvote (-1). Voting the same way twice
// withdraws the vote; voting the other way switches it. The alert author is
// credited or debited through the bus when a vote lands, not when it is
// withdrawn.
func (s *AlertService) Vote(alertID, voterID uint, value int) (*models.Alert, error) {
	if value != 1 && value != -1 {
		return nil, errors.New("vote value must be +1 or -1")
	}

	alert, err := s.alerts.GetAlert(alertID)
	if err != nil {
		return nil, err
	}
	if alert.UserID == voterID {
		return nil, errors.New("cannot vote on your own alert")
	}

	existing, err := s.votes.GetVote(alertID, voterID)
	if err != nil {
		return nil, err
	}

	switch {
	case existing == nil:
		vote := &models.AlertVote{AlertID: alertID, UserID: voterID, Value: value, CreatedAt: time.Now()}
		if err := s.votes.SaveVote(vote); err != nil {
			return nil, err
		}
		if err := s.applyVoteDelta(alert, value, 1); err != nil {
			return nil, err
		}
		s.publishVote(alert, value)

	case existing.Value == value:
		// toggle off
		if err := s.votes.DeleteVote(existing); err != nil {
			return nil, err
		}
		if err := s.applyVoteDelta(alert, value, -1); err != nil {
			return nil, err
		}

	default:
		existing.Value = value
		existing.UpdatedAt = time.Now()
		if err := s.votes.SaveVote(existing); err != nil {
			return nil, err
		}
		// new direction up, old direction down
		if err := s.applyVoteDelta(alert, value, 1); err != nil {
			return nil, err
		}
		if err := s.applyVoteDelta(alert, -value, -1); err != nil {
			return nil, err
		}
		s.publishVote(alert, value)
	}

	return s.alerts.GetAlert(alertID)
}

func (s *AlertService) applyVoteDelta(alert *models.Alert, direction, delta int) error {
	if direction > 0 {
		return s.alerts.AddVotes(alert.ID, delta, 0)
	}
	return s.alerts.AddVotes(alert.ID, 0, delta)
}

func (s *AlertService) publishVote(alert *models.Alert, value int) {
	if value > 0 {
		s.bus.Publish(UpvoteReceived{Alert: alert, RecipientID: alert.UserID})
	} else {
		s.bus.Publish(DownvoteReceived{Alert: alert, RecipientID: alert.UserID})
	}
}
