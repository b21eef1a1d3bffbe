package repository

import (
	"context"

	"chirp/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post and like data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	ListRecent(ctx context.Context, limit int, viewerID uint) ([]*models.Post, error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User", post.UserID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// ListRecent fetches the newest posts with author, like count and the
// viewer's liked flag computed in the same query. Ordering is created_at
// descending; ties keep the store's natural order.
func (r *postRepository) ListRecent(ctx context.Context, limit int, viewerID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), viewerID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// applyPostDetails adds subqueries to fetch the like count and liked status
// in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if viewerID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", viewerID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	// INSERT ... ON CONFLICT DO NOTHING so a concurrent toggle on the same
	// (user_id, post_id) pair degrades to a no-op instead of a unique
	// constraint failure.
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID,
	).Error
	if err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("Post", postID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
