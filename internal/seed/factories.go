// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"photogram/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user with a profile. Optional
// override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Password: string(hashed),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID: user.ID,
		Avatar: models.DefaultAvatarPath,
		Bio:    gofakeit.Sentence(8),
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	user.Profile = profile
	return user, nil
}

// CreatePost constructs and persists a post with one to three image rows.
// The files themselves are not written; paths follow the upload layout.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Caption: gofakeit.Sentence(f.rand.Intn(12) + 3),
		UUID:    uuid.NewString(),
		UserID:  user.ID,
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.rand.Intn(90)
	hoursBack := f.rand.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}

	imageCount := f.rand.Intn(3) + 1
	for i := 0; i < imageCount; i++ {
		image := &models.PostImage{
			PostID:   post.ID,
			FilePath: fmt.Sprintf("images/%s/seed-%d.jpg", post.UUID, i+1),
		}
		if err := f.db.Create(image).Error; err != nil {
			return nil, err
		}
		post.Images = append(post.Images, *image)
	}
	return post, nil
}

// CreateComment constructs and persists a comment on the given post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Body:   gofakeit.Sentence(f.rand.Intn(10) + 2),
		UserID: user.ID,
		PostID: post.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFollow persists a follow edge; duplicates are ignored.
func (f *Factory) CreateFollow(follower, followed *models.User) error {
	if follower.ID == followed.ID {
		return nil
	}
	follow := &models.Follow{FollowerID: follower.ID, FollowedID: followed.ID}
	err := f.db.Create(follow).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}

// CreateLike persists a like; duplicates are ignored.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{UserID: user.ID, PostID: post.ID}
	err := f.db.Create(like).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}
