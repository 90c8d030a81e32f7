// Package storage abstracts where uploaded media files live. Post images are
// namespaced by the post's UUID, avatars by username; deleting a post or
// replacing an avatar removes the whole directory.
package storage

import (
	"context"
	"io"
	"path"
)

// MediaStore is the port domain code writes media through. Put stores a file
// under dir and returns its path relative to the media root; RemoveDir wipes
// a directory and everything in it.
type MediaStore interface {
	Put(ctx context.Context, dir, filename string, r io.Reader) (string, error)
	RemoveDir(ctx context.Context, dir string) error
}

// PostDir returns the media directory for a post's images.
func PostDir(postUUID string) string {
	return path.Join("images", postUUID)
}

// AvatarDir returns the media directory for a user's avatar.
func AvatarDir(username string) string {
	return path.Join("avatars", username)
}
