package repository

import (
	"context"
	"testing"

	"photogram/internal/database"
	"photogram/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID, Avatar: models.DefaultAvatarPath}).Error)
	return user
}

func createPost(t *testing.T, db *gorm.DB, owner *models.User, caption, uuid string) *models.Post {
	t.Helper()
	post := &models.Post{Caption: caption, UUID: uuid, UserID: owner.ID}
	require.NoError(t, db.Create(post).Error)
	return post
}

func testCtx() context.Context {
	return context.Background()
}
