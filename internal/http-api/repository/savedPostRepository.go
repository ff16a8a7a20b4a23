package repository

import (
	"context"

	"inkwell/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedPostRepository interface {
	Upsert(ctx context.Context, userID, blogID int64) error
	Delete(ctx context.Context, userID, blogID int64) error
	Exists(ctx context.Context, userID, blogID int64) (bool, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	BlogIDsSavedBy(ctx context.Context, userID int64, blogIDs []int64) ([]int64, error)
	ListByUser(ctx context.Context, userID int64) ([]models.SavedPost, error)
}

type savedPostRepository struct {
	db *gorm.DB
}

func NewSavedPostRepository(db *gorm.DB) SavedPostRepository {
	return &savedPostRepository{db: db}
}

// Upsert inserts the (user, blog) row, absorbing the duplicate-key conflict.
func (r *savedPostRepository) Upsert(ctx context.Context, userID, blogID int64) error {
	saved := models.SavedPost{UserID: userID, BlogID: blogID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&saved).Error
}

// Delete removes the row if present; deleting a missing row is success.
func (r *savedPostRepository) Delete(ctx context.Context, userID, blogID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND blog_id = ?", userID, blogID).
		Delete(&models.SavedPost{}).Error
}

func (r *savedPostRepository) Exists(ctx context.Context, userID, blogID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SavedPost{}).
		Where("user_id = ? AND blog_id = ?", userID, blogID).
		Count(&count).Error
	return count > 0, err
}

func (r *savedPostRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SavedPost{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// BlogIDsSavedBy is the batched membership check behind per-page viewer flags.
func (r *savedPostRepository) BlogIDsSavedBy(ctx context.Context, userID int64, blogIDs []int64) ([]int64, error) {
	if len(blogIDs) == 0 {
		return nil, nil
	}
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&models.SavedPost{}).
		Where("user_id = ? AND blog_id IN ?", userID, blogIDs).
		Pluck("blog_id", &ids).Error
	return ids, err
}

// ListByUser retrieves a user's saved posts with the blog and its author,
// newest first
func (r *savedPostRepository) ListByUser(ctx context.Context, userID int64) ([]models.SavedPost, error) {
	var saved []models.SavedPost
	err := r.db.WithContext(ctx).
		Preload("Blog").
		Preload("Blog.Author").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}
