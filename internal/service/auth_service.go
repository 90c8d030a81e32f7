// Package service implements the business rules on top of the repositories.
package service

import (
	"context"
	"time"

	"photogram/internal/models"
	"photogram/internal/repository"
	"photogram/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher abstracts the credential hashing collaborator so tests can
// substitute a cheap implementation.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) error
}

type bcryptHasher struct{}

func (bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (bcryptHasher) Compare(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// NewBcryptHasher returns the production PasswordHasher.
func NewBcryptHasher() PasswordHasher {
	return bcryptHasher{}
}

// AuthService issues and validates opaque bearer tokens and manages accounts.
type AuthService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	hasher PasswordHasher
	// tokenTTL of zero means tokens never expire.
	tokenTTL time.Duration
	now      func() time.Time
}

// NewAuthService creates an AuthService. A nil hasher selects bcrypt.
func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, hasher PasswordHasher, tokenTTL time.Duration) *AuthService {
	if hasher == nil {
		hasher = bcryptHasher{}
	}
	return &AuthService{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// Register creates a new account with an empty profile.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("A user with the same name already exists.")
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{Username: username, Password: hashed}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Every account carries a profile pointing at the default avatar; the
	// presentation layer renders that marker as an empty string.
	profile := &models.Profile{UserID: user.ID, Avatar: models.DefaultAvatarPath}
	if err := s.users.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	user.Profile = profile

	return user, nil
}

// Login verifies credentials and returns the user together with their token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, *models.Token, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, &models.AppError{
			Code:    models.CodeNotFound,
			Message: "User with this name does not exist.",
		}
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		return nil, nil, models.NewInvalidCredentialError("Incorrect password.")
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, token, nil
}

// issueToken returns the user's existing token, rotating it only when it has
// expired. Issuance is idempotent: repeated logins return the same key until
// the TTL (if any) elapses.
func (s *AuthService) issueToken(ctx context.Context, userID uint) (*models.Token, error) {
	token, err := s.tokens.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if token == nil {
		token = &models.Token{
			Key:       uuid.NewString(),
			UserID:    userID,
			ExpiresAt: s.expiry(),
		}
		if err := s.tokens.Create(ctx, token); err != nil {
			return nil, err
		}
		return token, nil
	}

	if token.Expired(s.now()) {
		if err := s.tokens.Rotate(ctx, token, uuid.NewString(), s.expiry()); err != nil {
			return nil, err
		}
	}
	return token, nil
}

func (s *AuthService) expiry() *time.Time {
	if s.tokenTTL <= 0 {
		return nil
	}
	t := s.now().Add(s.tokenTTL)
	return &t
}

// ResolveToken maps a raw bearer key to its user. Missing, unknown and
// expired keys all produce the same Unauthenticated error.
func (s *AuthService) ResolveToken(ctx context.Context, key string) (*models.User, error) {
	if key == "" {
		return nil, models.NewUnauthenticatedError()
	}

	token, err := s.tokens.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if token == nil || token.Expired(s.now()) {
		return nil, models.NewUnauthenticatedError()
	}

	return s.users.GetByID(ctx, token.UserID)
}
