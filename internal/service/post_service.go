package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"photogram/internal/models"
	"photogram/internal/repository"
	"photogram/internal/storage"

	"github.com/google/uuid"
)

// ImageUpload is one uploaded file destined for a post's media directory.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// PostService creates and deletes posts and toggles likes.
type PostService struct {
	posts repository.PostRepository
	media storage.MediaStore
}

// NewPostService creates a PostService.
func NewPostService(posts repository.PostRepository, media storage.MediaStore) *PostService {
	return &PostService{posts: posts, media: media}
}

// CreatePost persists the post, then stores each image under the post's
// UUID-derived media directory and records a PostImage row for it.
func (s *PostService) CreatePost(ctx context.Context, ownerID uint, caption string, images []ImageUpload) (*models.Post, error) {
	if strings.TrimSpace(caption) == "" {
		return nil, models.NewValidationError("Caption is required")
	}
	if len(caption) > models.MaxCaptionLen {
		return nil, models.NewValidationError(fmt.Sprintf("Caption too long (max %d characters)", models.MaxCaptionLen))
	}

	post := &models.Post{
		Caption: caption,
		UUID:    uuid.NewString(),
		UserID:  ownerID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	dir := storage.PostDir(post.UUID)
	for _, img := range images {
		rel, err := s.media.Put(ctx, dir, img.Filename, img.Content)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		if err := s.posts.AddImage(ctx, &models.PostImage{PostID: post.ID, FilePath: rel}); err != nil {
			return nil, err
		}
	}

	return s.posts.GetByID(ctx, post.ID, ownerID)
}

// DeletePost removes a post owned by actor. The media directory is wiped
// first; when that fails the rows stay in place and the whole operation
// fails, so cleanup is never silently skipped.
func (s *PostService) DeletePost(ctx context.Context, actorID, postID uint) error {
	post, err := s.posts.GetByID(ctx, postID, actorID)
	if err != nil {
		return err
	}

	if post.UserID != actorID {
		return models.NewForbiddenError("You can only delete your own posts.")
	}

	if err := s.media.RemoveDir(ctx, storage.PostDir(post.UUID)); err != nil {
		return models.NewInternalError(err)
	}

	return s.posts.Delete(ctx, postID)
}

// ToggleLike flips the (post, user) like edge. It reports whether the post
// is liked afterwards plus the resulting like count, so callers can phrase
// distinct "added"/"removed" responses.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (bool, int64, error) {
	if _, err := s.posts.GetByID(ctx, postID, userID); err != nil {
		return false, 0, err
	}

	isLiked, err := s.posts.IsLiked(ctx, userID, postID)
	if err != nil {
		return false, 0, err
	}

	if isLiked {
		if err := s.posts.Unlike(ctx, userID, postID); err != nil {
			return false, 0, err
		}
	} else {
		if err := s.posts.Like(ctx, userID, postID); err != nil {
			return false, 0, err
		}
	}

	total, err := s.posts.TotalLikes(ctx, postID)
	if err != nil {
		return false, 0, err
	}
	return !isLiked, total, nil
}
