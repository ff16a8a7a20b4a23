package repository

import (
	"context"

	"inkwell/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	Upsert(ctx context.Context, userID, blogID int64) error
	Delete(ctx context.Context, userID, blogID int64) error
	Exists(ctx context.Context, userID, blogID int64) (bool, error)
	CountByBlog(ctx context.Context, blogID int64) (int64, error)
	CountByBlogIDs(ctx context.Context, blogIDs []int64) (map[int64]int64, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	BlogIDsLikedBy(ctx context.Context, userID int64, blogIDs []int64) ([]int64, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Upsert inserts the (user, blog) row, absorbing the duplicate-key conflict.
// Two concurrent likes from the same user both succeed and leave one row.
func (r *likeRepository) Upsert(ctx context.Context, userID, blogID int64) error {
	like := models.Like{UserID: userID, BlogID: blogID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
}

// Delete removes the row if present; deleting a missing row is success.
func (r *likeRepository) Delete(ctx context.Context, userID, blogID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND blog_id = ?", userID, blogID).
		Delete(&models.Like{}).Error
}

func (r *likeRepository) Exists(ctx context.Context, userID, blogID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND blog_id = ?", userID, blogID).
		Count(&count).Error
	return count > 0, err
}

// CountByBlog recounts the relation rows; counts are never denormalized.
func (r *likeRepository) CountByBlog(ctx context.Context, blogID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("blog_id = ?", blogID).
		Count(&count).Error
	return count, err
}

// CountByBlogIDs returns per-blog like counts for a whole page in one query.
func (r *likeRepository) CountByBlogIDs(ctx context.Context, blogIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(blogIDs))
	if len(blogIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		BlogID int64
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Select("blog_id, COUNT(*) as count").
		Where("blog_id IN ?", blogIDs).
		Group("blog_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.BlogID] = row.Count
	}
	return counts, nil
}

func (r *likeRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// BlogIDsLikedBy is the batched membership check behind per-page viewer
// flags: one query regardless of page size.
func (r *likeRepository) BlogIDsLikedBy(ctx context.Context, userID int64, blogIDs []int64) ([]int64, error) {
	if len(blogIDs) == 0 {
		return nil, nil
	}
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND blog_id IN ?", userID, blogIDs).
		Pluck("blog_id", &ids).Error
	return ids, err
}

// ListByUser retrieves a user's likes with the liked blog and its author,
// newest first
func (r *likeRepository) ListByUser(ctx context.Context, userID int64) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.WithContext(ctx).
		Preload("Blog").
		Preload("Blog.Author").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&likes).Error
	return likes, err
}
