package models

import (
	"time"
)

// Token is the opaque bearer credential for a user. Each user holds at
// most one token at a time; logging in returns the existing one until it
// expires.
type Token struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Key       string     `gorm:"uniqueIndex;not null;size:64" json:"key"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the token is past its expiry. Tokens without an
// expiry never expire.
func (t *Token) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}
