package repository

import (
	"context"

	"inkwell/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	FindOwnerID(ctx context.Context, commentID int64) (int64, error)
	DeleteOwned(ctx context.Context, commentID, userID int64) (int64, error)
	TopLevelByBlog(ctx context.Context, blogID int64) ([]models.Comment, error)
	RepliesByParentIDs(ctx context.Context, parentIDs []int64) ([]models.Comment, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Comment, error)
	CountByBlog(ctx context.Context, blogID int64) (int64, error)
	CountByBlogIDs(ctx context.Context, blogIDs []int64) (map[int64]int64, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// GetByID retrieves a comment with its author
func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&comment, commentID).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindOwnerID resolves just the author of a comment; used to turn a zero-row
// conditional delete into a 404 or 403.
func (r *commentRepository) FindOwnerID(ctx context.Context, commentID int64) (int64, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Select("user_id").
		First(&comment, commentID).Error
	if err != nil {
		return 0, err
	}
	return comment.UserID, nil
}

// DeleteOwned deletes the comment only when userID wrote it. The ownership
// check and the delete are one conditional statement. Replies cascade.
func (r *commentRepository) DeleteOwned(ctx context.Context, commentID, userID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", commentID, userID).
		Delete(&models.Comment{})
	return result.RowsAffected, result.Error
}

// TopLevelByBlog retrieves a blog's top-level comments, newest first
func (r *commentRepository) TopLevelByBlog(ctx context.Context, blogID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("blog_id = ? AND parent_id IS NULL", blogID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// RepliesByParentIDs fetches the replies for a page of top-level comments in
// one query, oldest first so threads read chronologically.
func (r *commentRepository) RepliesByParentIDs(ctx context.Context, parentIDs []int64) ([]models.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var replies []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("parent_id IN ?", parentIDs).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

// ListByUser retrieves a user's comments with the blog they belong to,
// newest first
func (r *commentRepository) ListByUser(ctx context.Context, userID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("Blog").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) CountByBlog(ctx context.Context, blogID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("blog_id = ?", blogID).
		Count(&count).Error
	return count, err
}

// CountByBlogIDs returns per-blog comment counts for a whole page in one query.
func (r *commentRepository) CountByBlogIDs(ctx context.Context, blogIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(blogIDs))
	if len(blogIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		BlogID int64
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
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

func (r *commentRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
