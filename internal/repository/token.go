package repository

import (
	"context"
	"errors"
	"time"

	"photogram/internal/models"

	"gorm.io/gorm"
)

// TokenRepository defines persistence operations for opaque bearer tokens.
type TokenRepository interface {
	GetByKey(ctx context.Context, key string) (*models.Token, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Token, error)
	Create(ctx context.Context, token *models.Token) error
	Rotate(ctx context.Context, token *models.Token, newKey string, expiresAt *time.Time) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository returns a new TokenRepository implementation.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) GetByKey(ctx context.Context, key string) (*models.Token, error) {
	var token models.Token
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &token, nil
}

func (r *tokenRepository) GetByUserID(ctx context.Context, userID uint) (*models.Token, error) {
	var token models.Token
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &token, nil
}

func (r *tokenRepository) Create(ctx context.Context, token *models.Token) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tokenRepository) Rotate(ctx context.Context, token *models.Token, newKey string, expiresAt *time.Time) error {
	updates := map[string]any{
		"key":        newKey,
		"expires_at": expiresAt,
	}
	if err := r.db.WithContext(ctx).Model(token).Updates(updates).Error; err != nil {
		return models.NewInternalError(err)
	}
	token.Key = newKey
	token.ExpiresAt = expiresAt
	return nil
}
