package services

import (
	"errors"
	"strings"
	"time"

	"backend/models"
)

type CommentService struct {
	alerts   AlertStore
	comments CommentStore
	bus      *Bus
}

func NewCommentService(alerts AlertStore, comments CommentStore, bus *Bus) *CommentService {
	return &CommentService{alerts: alerts, comments: comments, bus: bus}
}

// CreateComment posts a comment on an alert and credits the commenter
// through the bus.
func (s *CommentService) CreateComment(alertID, authorID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("comment cannot be empty")
	}

	if _, err := s.alerts.GetAlert(alertID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AlertID:   alertID,
		UserID:    authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, err
	}

	s.bus.Publish(CommentPosted{Comment: comment, AuthorID: authorID})
	return comment, nil
}

func (s *CommentService) CommentsByAlert(alertID uint) ([]models.Comment, error) {
	return s.comments.CommentsByAlert(alertID)
}
