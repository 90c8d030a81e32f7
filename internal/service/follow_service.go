package service

import (
	"context"

	"photogram/internal/models"
	"photogram/internal/repository"
)

// FollowService toggles edges in the social graph.
type FollowService struct {
	follows repository.FollowRepository
	users   repository.UserRepository
}

// NewFollowService creates a FollowService.
func NewFollowService(follows repository.FollowRepository, users repository.UserRepository) *FollowService {
	return &FollowService{follows: follows, users: users}
}

// ToggleFollow flips the presence of the (follower, target) edge and reports
// whether the edge exists afterwards. Two calls return the graph to its
// original state. Following yourself is rejected.
func (s *FollowService) ToggleFollow(ctx context.Context, followerID, targetID uint) (bool, error) {
	if followerID == targetID {
		return false, models.NewValidationError("You cannot follow yourself.")
	}

	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		return false, err
	}

	exists, err := s.follows.Exists(ctx, followerID, targetID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.follows.Delete(ctx, followerID, targetID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.follows.Create(ctx, followerID, targetID); err != nil {
		return false, err
	}
	return true, nil
}

// IsFollowedBy reports whether viewer follows subject. Presentation only.
func (s *FollowService) IsFollowedBy(ctx context.Context, subjectID, viewerID uint) (bool, error) {
	return s.follows.Exists(ctx, viewerID, subjectID)
}
