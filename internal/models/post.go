package models

import (
	"time"
)

// MaxCaptionLen bounds post captions and comment bodies.
const MaxCaptionLen = 2000

// Post represents a published post and its media namespace.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Caption string `gorm:"size:2000;not null" json:"caption"`
	// UUID namespaces the post's media directory on disk.
	UUID      string    `gorm:"uniqueIndex;not null" json:"uuid"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"published_at"`

	Images   []PostImage `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Comments []Comment   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`

	// TotalLikes is not persisted; computed at query time.
	TotalLikes int `gorm:"->" json:"total_likes"`
	// Liked indicates whether the current viewer liked this post (computed).
	Liked bool `gorm:"->" json:"liked"`
}

// PostImage stores a single media file reference belonging to a post.
type PostImage struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"not null;index" json:"post_id"`
	// FilePath is relative to the media root, e.g. "images/<uuid>/<name>".
	FilePath  string    `gorm:"not null" json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}
