package server

import (
	"testing"
	"time"

	"photogram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenterAvatarFallback(t *testing.T) {
	p := newPresenter("http://localhost:8390", nil)

	t.Run("missing profile is empty", func(t *testing.T) {
		assert.Equal(t, "", p.avatarURL(&models.User{Username: "a"}))
	})

	t.Run("empty avatar is empty", func(t *testing.T) {
		u := &models.User{Username: "a", Profile: &models.Profile{}}
		assert.Equal(t, "", p.avatarURL(u))
	})

	t.Run("default marker is empty", func(t *testing.T) {
		u := &models.User{Username: "a", Profile: &models.Profile{Avatar: models.DefaultAvatarPath}}
		assert.Equal(t, "", p.avatarURL(u))
	})

	t.Run("real avatar becomes absolute", func(t *testing.T) {
		u := &models.User{Username: "a", Profile: &models.Profile{Avatar: "avatars/a/me.png"}}
		assert.Equal(t, "http://localhost:8390/media/avatars/a/me.png", p.avatarURL(u))
	})
}

func TestPresenterFollowedSet(t *testing.T) {
	p := newPresenter("http://localhost:8390", []uint{2, 5})

	assert.True(t, p.user(&models.User{ID: 2}).IsFollowed)
	assert.False(t, p.user(&models.User{ID: 3}).IsFollowed)
	// a repo-computed flag wins even outside the followed set
	assert.True(t, p.user(&models.User{ID: 9, IsFollowed: true}).IsFollowed)
}

func TestPresenterPostShape(t *testing.T) {
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := &models.Post{
		ID:        7,
		Caption:   "hello",
		CreatedAt: published,
		User:      models.User{ID: 1, Username: "alice"},
		Images: []models.PostImage{
			{ID: 1, FilePath: "images/u/one.jpg"},
			{ID: 2, FilePath: "images/u/two.jpg"},
		},
		Comments: []models.Comment{
			{ID: 4, Body: "hi", User: models.User{ID: 2, Username: "bob"}},
		},
		Liked:      true,
		TotalLikes: 3,
	}

	p := newPresenter("https://pg.example/", nil)
	shaped := p.post(post)

	assert.Equal(t, uint(7), shaped.ID)
	assert.Equal(t, published, shaped.PublishedAt)
	assert.Equal(t, "alice", shaped.Owner.Username)
	require.Len(t, shaped.Images, 2)
	// a trailing base URL slash does not double up
	assert.Equal(t, "https://pg.example/media/images/u/one.jpg", shaped.Images[0])
	require.Len(t, shaped.Comments, 1)
	assert.Equal(t, "bob", shaped.Comments[0].Author.Username)
	assert.True(t, shaped.IsLiked)
	assert.Equal(t, 3, shaped.TotalLikes)

	// empty collections shape as [], not null
	bare := p.post(&models.Post{ID: 8, User: models.User{ID: 1}})
	assert.NotNil(t, bare.Images)
	assert.NotNil(t, bare.Comments)
}
