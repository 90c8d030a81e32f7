// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"strings"
	"time"

	"photogram/internal/models"
)

// UserPayload is the shaped user returned by every endpoint.
type UserPayload struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	Avatar     string `json:"avatar"`
	IsFollowed bool   `json:"is_followed"`
}

// CommentPayload is the shaped comment nested in posts and comment responses.
type CommentPayload struct {
	ID      uint        `json:"id"`
	Body    string      `json:"body"`
	AddedAt time.Time   `json:"added_at"`
	Author  UserPayload `json:"author"`
}

// PostPayload is the shaped post returned by the feed and post endpoints.
type PostPayload struct {
	ID          uint             `json:"id"`
	Caption     string           `json:"caption"`
	PublishedAt time.Time        `json:"published_at"`
	Owner       UserPayload      `json:"owner"`
	Images      []string         `json:"images"`
	Comments    []CommentPayload `json:"comments"`
	IsLiked     bool             `json:"is_liked"`
	TotalLikes  int              `json:"total_likes"`
}

// presenter shapes domain entities into response payloads. It carries the
// request's base URL for absolute media links and the viewer's followed set
// for is_followed flags.
type presenter struct {
	baseURL  string
	followed map[uint]bool
}

func newPresenter(baseURL string, followedIDs []uint) *presenter {
	followed := make(map[uint]bool, len(followedIDs))
	for _, id := range followedIDs {
		followed[id] = true
	}
	return &presenter{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		followed: followed,
	}
}

// mediaURL resolves a media-root-relative path to an absolute URL.
func (p *presenter) mediaURL(rel string) string {
	return p.baseURL + "/media/" + strings.TrimPrefix(rel, "/")
}

// avatarURL resolves a user's avatar. An unset avatar and the default
// marker both render as an empty string, never as a default-asset path.
func (p *presenter) avatarURL(u *models.User) string {
	if u.Profile == nil {
		return ""
	}
	avatar := u.Profile.Avatar
	if avatar == "" || avatar == models.DefaultAvatarPath {
		return ""
	}
	return p.mediaURL(avatar)
}

func (p *presenter) user(u *models.User) UserPayload {
	return UserPayload{
		ID:         u.ID,
		Username:   u.Username,
		Avatar:     p.avatarURL(u),
		IsFollowed: u.IsFollowed || p.followed[u.ID],
	}
}

func (p *presenter) comment(c *models.Comment) CommentPayload {
	return CommentPayload{
		ID:      c.ID,
		Body:    c.Body,
		AddedAt: c.CreatedAt,
		Author:  p.user(&c.User),
	}
}

func (p *presenter) post(post *models.Post) PostPayload {
	images := make([]string, 0, len(post.Images))
	for _, img := range post.Images {
		images = append(images, p.mediaURL(img.FilePath))
	}

	comments := make([]CommentPayload, 0, len(post.Comments))
	for i := range post.Comments {
		comments = append(comments, p.comment(&post.Comments[i]))
	}

	return PostPayload{
		ID:          post.ID,
		Caption:     post.Caption,
		PublishedAt: post.CreatedAt,
		Owner:       p.user(&post.User),
		Images:      images,
		Comments:    comments,
		IsLiked:     post.Liked,
		TotalLikes:  post.TotalLikes,
	}
}

func (p *presenter) posts(posts []*models.Post) []PostPayload {
	shaped := make([]PostPayload, 0, len(posts))
	for _, post := range posts {
		shaped = append(shaped, p.post(post))
	}
	return shaped
}
