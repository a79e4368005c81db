package services

import (
	"backend/models"
)

// UserService is the read side of reputation: stats, badges, leaderboard.
type UserService struct {
	stats  StatsStore
	badges BadgeStore
}

func NewUserService(stats StatsStore, badges BadgeStore) *UserService {
	return &UserService{stats: stats, badges: badges}
}

func (s *UserService) GetStatistics(userID uint) (*models.UserStatistics, error) {
	return s.stats.GetOrCreateStats(userID)
}

func (s *UserService) GetBadges(userID uint) ([]models.Badge, error) {
	return s.badges.ListBadges(userID)
}

// Leaderboard returns the top users by reputation points.
func (s *UserService) Leaderboard(limit int) ([]models.UserStatistics, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.stats.TopByPoints(limit)
}
