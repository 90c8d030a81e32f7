package service

import (
	"context"
	"errors"
	"time"

	"photogram/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	listFn          func(context.Context, uint) ([]models.User, error)
	getProfileFn    func(context.Context, uint) (*models.Profile, error)
	saveProfileFn   func(context.Context, *models.Profile) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) List(ctx context.Context, viewerID uint) ([]models.User, error) {
	return s.listFn(ctx, viewerID)
}
func (s *userRepoStub) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getProfileFn(ctx, userID)
}
func (s *userRepoStub) SaveProfile(ctx context.Context, profile *models.Profile) error {
	return s.saveProfileFn(ctx, profile)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		listFn:          func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		getProfileFn:    func(_ context.Context, _ uint) (*models.Profile, error) { return nil, nil },
		saveProfileFn:   func(_ context.Context, _ *models.Profile) error { return nil },
	}
}

// tokenRepoStub is a stub for repository.TokenRepository.
type tokenRepoStub struct {
	getByKeyFn    func(context.Context, string) (*models.Token, error)
	getByUserIDFn func(context.Context, uint) (*models.Token, error)
	createFn      func(context.Context, *models.Token) error
	rotateFn      func(context.Context, *models.Token, string, *time.Time) error
}

func (s *tokenRepoStub) GetByKey(ctx context.Context, key string) (*models.Token, error) {
	return s.getByKeyFn(ctx, key)
}
func (s *tokenRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Token, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *tokenRepoStub) Create(ctx context.Context, token *models.Token) error {
	return s.createFn(ctx, token)
}
func (s *tokenRepoStub) Rotate(ctx context.Context, token *models.Token, newKey string, expiresAt *time.Time) error {
	return s.rotateFn(ctx, token, newKey, expiresAt)
}

func noopTokenRepo() *tokenRepoStub {
	return &tokenRepoStub{
		getByKeyFn:    func(_ context.Context, _ string) (*models.Token, error) { return nil, nil },
		getByUserIDFn: func(_ context.Context, _ uint) (*models.Token, error) { return nil, nil },
		createFn:      func(_ context.Context, _ *models.Token) error { return nil },
		rotateFn:      func(_ context.Context, _ *models.Token, _ string, _ *time.Time) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn     func(context.Context, *models.Post) error
	addImageFn   func(context.Context, *models.PostImage) error
	getByIDFn    func(context.Context, uint, uint) (*models.Post, error)
	feedFn       func(context.Context, []uint, uint, int, uint) ([]*models.Post, error)
	deleteFn     func(context.Context, uint) error
	isLikedFn    func(context.Context, uint, uint) (bool, error)
	likeFn       func(context.Context, uint, uint) error
	unlikeFn     func(context.Context, uint, uint) error
	totalLikesFn func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) AddImage(ctx context.Context, image *models.PostImage) error {
	return s.addImageFn(ctx, image)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *postRepoStub) Feed(ctx context.Context, ownerIDs []uint, startID uint, limit int, viewerID uint) ([]*models.Post, error) {
	return s.feedFn(ctx, ownerIDs, startID, limit, viewerID)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) TotalLikes(ctx context.Context, postID uint) (int64, error) {
	return s.totalLikesFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:   func(_ context.Context, _ *models.Post) error { return nil },
		addImageFn: func(_ context.Context, _ *models.PostImage) error { return nil },
		getByIDFn:  func(_ context.Context, _, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		feedFn: func(_ context.Context, _ []uint, _ uint, _ int, _ uint) ([]*models.Post, error) {
			return nil, nil
		},
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		isLikedFn:    func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		likeFn:       func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:     func(_ context.Context, _, _ uint) error { return nil },
		totalLikesFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn  func(context.Context, *models.Comment) error
	getByIDFn func(context.Context, uint) (*models.Comment, error)
	deleteFn  func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	existsFn      func(context.Context, uint, uint) (bool, error)
	createFn      func(context.Context, uint, uint) error
	deleteFn      func(context.Context, uint, uint) error
	followedIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Create(ctx context.Context, followerID, followedID uint) error {
	return s.createFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followedID uint) error {
	return s.deleteFn(ctx, followerID, followedID)
}
func (s *followRepoStub) FollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followedIDsFn(ctx, followerID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		existsFn:      func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		createFn:      func(_ context.Context, _, _ uint) error { return nil },
		deleteFn:      func(_ context.Context, _, _ uint) error { return nil },
		followedIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// plainHasher avoids bcrypt cost in tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Compare(hashed, password string) error {
	if hashed != "hashed:"+password {
		return errPasswordMismatch
	}
	return nil
}

var errPasswordMismatch = errors.New("password mismatch")
