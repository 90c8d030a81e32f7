package repository

import (
	"testing"
	"time"

	"photogram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	alice := createUser(t, db, "alice")

	token := &models.Token{Key: "key-1", UserID: alice.ID}
	require.NoError(t, repo.Create(testCtx(), token))

	byKey, err := repo.GetByKey(testCtx(), "key-1")
	require.NoError(t, err)
	require.NotNil(t, byKey)
	assert.Equal(t, alice.ID, byKey.UserID)

	byUser, err := repo.GetByUserID(testCtx(), alice.ID)
	require.NoError(t, err)
	require.NotNil(t, byUser)
	assert.Equal(t, "key-1", byUser.Key)

	// unknown keys and users are nil, not errors
	missing, err := repo.GetByKey(testCtx(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
	missing, err = repo.GetByUserID(testCtx(), 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTokenOnePerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	alice := createUser(t, db, "alice")

	require.NoError(t, repo.Create(testCtx(), &models.Token{Key: "key-1", UserID: alice.ID}))
	err := repo.Create(testCtx(), &models.Token{Key: "key-2", UserID: alice.ID})
	require.Error(t, err)
}

func TestTokenRotate(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	alice := createUser(t, db, "alice")

	token := &models.Token{Key: "old-key", UserID: alice.ID}
	require.NoError(t, repo.Create(testCtx(), token))

	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, repo.Rotate(testCtx(), token, "new-key", &expiry))
	assert.Equal(t, "new-key", token.Key)

	// the old key no longer resolves
	old, err := repo.GetByKey(testCtx(), "old-key")
	require.NoError(t, err)
	assert.Nil(t, old)

	rotated, err := repo.GetByKey(testCtx(), "new-key")
	require.NoError(t, err)
	require.NotNil(t, rotated)
	require.NotNil(t, rotated.ExpiresAt)
	assert.WithinDuration(t, expiry, *rotated.ExpiresAt, time.Second)
}
