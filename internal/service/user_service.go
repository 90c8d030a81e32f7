package service

import (
	"context"
	"io"

	"photogram/internal/models"
	"photogram/internal/repository"
	"photogram/internal/storage"
)

// UserService lists users and manages avatars.
type UserService struct {
	users repository.UserRepository
	media storage.MediaStore
}

// NewUserService creates a UserService.
func NewUserService(users repository.UserRepository, media storage.MediaStore) *UserService {
	return &UserService{users: users, media: media}
}

// ListUsers returns the user directory in reverse id order with
// viewer-relative follow flags. The viewer's own row is included and
// never carries a follow flag, since no self-follow edge can exist.
func (s *UserService) ListUsers(ctx context.Context, viewer models.Viewer) ([]models.User, error) {
	return s.users.List(ctx, viewer.UserID())
}

// SetAvatar replaces the user's avatar: the previous avatar directory is
// wiped first, then the new file stored and recorded on the profile.
func (s *UserService) SetAvatar(ctx context.Context, user *models.User, filename string, content io.Reader) (*models.Profile, error) {
	dir := storage.AvatarDir(user.Username)
	if err := s.media.RemoveDir(ctx, dir); err != nil {
		return nil, models.NewInternalError(err)
	}

	rel, err := s.media.Put(ctx, dir, filename, content)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	profile, err := s.profileFor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	profile.Avatar = rel
	if err := s.users.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ResetAvatar wipes the stored avatar and points the profile back at the
// default marker, which presentation renders as an empty string.
func (s *UserService) ResetAvatar(ctx context.Context, user *models.User) (*models.Profile, error) {
	if err := s.media.RemoveDir(ctx, storage.AvatarDir(user.Username)); err != nil {
		return nil, models.NewInternalError(err)
	}

	profile, err := s.profileFor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	profile.Avatar = models.DefaultAvatarPath
	if err := s.users.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *UserService) profileFor(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &models.Profile{UserID: userID}
	}
	return profile, nil
}
