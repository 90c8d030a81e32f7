// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"photogram/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	AddImage(ctx context.Context, image *models.PostImage) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error)
	Feed(ctx context.Context, ownerIDs []uint, startID uint, limit int, viewerID uint) ([]*models.Post, error)
	Delete(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
	TotalLikes(ctx context.Context, postID uint) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) AddImage(ctx context.Context, image *models.PostImage) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// applyPostDetails adds subqueries to fetch the like count and the viewer's
// liked status in a single query. An anonymous viewer (id 0) matches no like
// row, so liked comes back false without a separate code path.
func (r *postRepository) applyPostDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	return db.Model(&models.Post{}).Select(
		"posts.*, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS total_likes, "+
			"EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) AS liked",
		viewerID,
	)
}

// preloadShape loads everything presentation needs: owner (with profile),
// images ordered by id, and comments with their authors.
func preloadShape(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("User.Profile").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_images.id ASC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id ASC")
		}).
		Preload("Comments.User").
		Preload("Comments.User.Profile")
}

func (r *postRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	var post models.Post
	err := preloadShape(r.applyPostDetails(r.db.WithContext(ctx), viewerID)).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// Feed selects posts in strictly descending id order. ownerIDs narrows the
// feed to those owners; a nil slice means no owner filter. startID is an
// exclusive upper bound on id; 0 means start from the most recent post.
func (r *postRepository) Feed(ctx context.Context, ownerIDs []uint, startID uint, limit int, viewerID uint) ([]*models.Post, error) {
	var posts []*models.Post

	q := preloadShape(r.applyPostDetails(r.db.WithContext(ctx), viewerID))
	if ownerIDs != nil {
		q = q.Where("posts.user_id IN ?", ownerIDs)
	}
	if startID > 0 {
		q = q.Where("posts.id < ?", startID)
	}

	err := q.Order("posts.id DESC").Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Delete removes the post row and its dependent images, comments and likes
// in one transaction. Media files are the service layer's concern.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	// ON CONFLICT DO NOTHING keeps a concurrent double-toggle from erroring.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Like{UserID: userID, PostID: postID}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) TotalLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
