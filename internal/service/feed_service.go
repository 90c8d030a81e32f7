package service

import (
	"context"

	"photogram/internal/models"
	"photogram/internal/repository"
)

// FeedPageSize is the fixed page size. A page with fewer posts is the only
// signal that there are no more pages.
const FeedPageSize = 5

// FeedResult is one page of the feed.
type FeedResult struct {
	Posts []*models.Post
	// ArePostsOver is true when this page returned fewer than FeedPageSize posts.
	ArePostsOver bool
	// NoFollows is set when an authenticated viewer follows nobody; the
	// caller reports this condition instead of an empty page.
	NoFollows bool
	// FollowedIDs is the viewer's followed set, loaded as a shaping side
	// product. Empty for anonymous viewers.
	FollowedIDs []uint
}

// FeedService assembles the reverse-chronological, graph-filtered post feed.
type FeedService struct {
	posts   repository.PostRepository
	follows repository.FollowRepository
}

// NewFeedService creates a FeedService.
func NewFeedService(posts repository.PostRepository, follows repository.FollowRepository) *FeedService {
	return &FeedService{posts: posts, follows: follows}
}

// Feed returns the page of posts older than startID (exclusive; 0 means the
// most recent page). Authenticated viewers see posts from the users they
// follow plus their own; anonymous viewers see everything.
func (s *FeedService) Feed(ctx context.Context, viewer models.Viewer, startID uint) (*FeedResult, error) {
	if !viewer.IsAuthenticated() {
		posts, err := s.posts.Feed(ctx, nil, startID, FeedPageSize, 0)
		if err != nil {
			return nil, err
		}
		return &FeedResult{Posts: posts, ArePostsOver: len(posts) < FeedPageSize}, nil
	}

	followed, err := s.follows.FollowedIDs(ctx, viewer.UserID())
	if err != nil {
		return nil, err
	}
	if len(followed) == 0 {
		return &FeedResult{NoFollows: true, ArePostsOver: true}, nil
	}

	owners := append(append([]uint{}, followed...), viewer.UserID())
	posts, err := s.posts.Feed(ctx, owners, startID, FeedPageSize, viewer.UserID())
	if err != nil {
		return nil, err
	}
	return &FeedResult{
		Posts:        posts,
		ArePostsOver: len(posts) < FeedPageSize,
		FollowedIDs:  followed,
	}, nil
}
