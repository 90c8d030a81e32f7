package models

import (
	"time"
)

// DefaultAvatarPath marks a profile that has no uploaded avatar. It is a
// storage-level sentinel; presentation renders it as an empty string.
const DefaultAvatarPath = "static/default_avatar.jpg"

// User represents a registered account.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;size:30" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Posts   []Post   `gorm:"foreignKey:UserID" json:"posts,omitempty"`

	// IsFollowed indicates whether the current viewer follows this user
	// (computed at query time, never persisted).
	IsFollowed bool `gorm:"->" json:"is_followed"`
}

// Profile carries the presentational extras of an account.
type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	// Avatar is a path relative to the media root, or DefaultAvatarPath.
	Avatar    string    `json:"avatar"`
	Bio       string    `gorm:"size:500" json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
