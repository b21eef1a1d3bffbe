package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/repository"
	"chirp/internal/validation"
)

// FeedPageSize is the fixed number of posts on the feed page.
const FeedPageSize = 10

// PostService handles the post/like write path and the feed read path.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates and persists a new post. There is no rate limiting
// and no duplicate detection; identical posts may be created freely.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, content string) (*models.Post, error) {
	if err := validation.ValidateContent(content); err != nil {
		return nil, models.NewValidationError("content", err.Error())
	}

	post := &models.Post{
		Content: content,
		UserID:  authorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.PostsCreatedTotal.Inc()
	return post, nil
}

// ToggleLike flips the like state for (userID, postID) and returns the new
// state. The existence check and the write are separate statements; two
// concurrent toggles of the same pair can both observe "absent", which the
// conflict-ignoring insert in the repository turns into a single like
// instead of an error.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return false, err
		}
		observability.LikeTogglesTotal.WithLabelValues("unliked").Inc()
		return false, nil
	}

	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return false, err
	}
	observability.LikeTogglesTotal.WithLabelValues("liked").Inc()
	return true, nil
}

// ListRecent returns at most FeedPageSize posts ordered by creation time
// descending, each carrying its like count and whether the viewer liked it.
func (s *PostService) ListRecent(ctx context.Context, viewerID uint) ([]*models.Post, error) {
	return s.postRepo.ListRecent(ctx, FeedPageSize, viewerID)
}
