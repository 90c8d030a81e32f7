package service

import (
	"context"
	"fmt"
	"strings"

	"photogram/internal/models"
	"photogram/internal/repository"
)

// CommentService attaches comments to posts and removes them.
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewCommentService creates a CommentService.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// AddComment appends a comment to the post and returns it with its author loaded.
func (s *CommentService) AddComment(ctx context.Context, authorID, postID uint, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, models.NewValidationError("Comment body is required")
	}
	if len(body) > models.MaxCaptionLen {
		return nil, models.NewValidationError(fmt.Sprintf("Comment too long (max %d characters)", models.MaxCaptionLen))
	}

	if _, err := s.posts.GetByID(ctx, postID, authorID); err != nil {
		return nil, err
	}

	comment := &models.Comment{Body: body, UserID: authorID, PostID: postID}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. The comment's author and the owner of the
// post it sits on may delete it; anyone else is forbidden.
func (s *CommentService) DeleteComment(ctx context.Context, actorID, commentID uint) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != actorID {
		post, err := s.posts.GetByID(ctx, comment.PostID, actorID)
		if err != nil {
			return err
		}
		if post.UserID != actorID {
			return models.NewForbiddenError("You can only delete your own comments.")
		}
	}

	return s.comments.Delete(ctx, commentID)
}
