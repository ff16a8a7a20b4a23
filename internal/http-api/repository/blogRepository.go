package repository

import (
	"context"

	"inkwell/internal/http-api/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	UpdateOwned(ctx context.Context, blogID, authorID int64, title, content string) (int64, error)
	DeleteOwned(ctx context.Context, blogID, authorID int64) (int64, error)
	GetByID(ctx context.Context, blogID int64) (*models.Blog, error)
	FindAuthorID(ctx context.Context, blogID int64) (int64, error)
	Exists(ctx context.Context, blogID int64) (bool, error)
	ListAll(ctx context.Context) ([]models.Blog, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Blog, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// Create a new blog post
func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

// UpdateOwned updates title/content only when authorID owns the blog. The
// ownership check and the write are one conditional statement, so there is no
// check-then-mutate window. Returns the number of rows touched.
func (r *blogRepository) UpdateOwned(ctx context.Context, blogID, authorID int64, title, content string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ? AND author_id = ?", blogID, authorID).
		Updates(map[string]interface{}{"title": title, "content": content})
	return result.RowsAffected, result.Error
}

// DeleteOwned deletes the blog only when authorID owns it. Dependent likes,
// comments and saved posts go with it via ON DELETE CASCADE.
func (r *blogRepository) DeleteOwned(ctx context.Context, blogID, authorID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", blogID, authorID).
		Delete(&models.Blog{})
	return result.RowsAffected, result.Error
}

// GetByID retrieves a blog with its author
func (r *blogRepository) GetByID(ctx context.Context, blogID int64) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&blog, blogID).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindAuthorID resolves just the owner of a blog; used to turn a zero-row
// conditional delete/update into a 404 or 403.
func (r *blogRepository) FindAuthorID(ctx context.Context, blogID int64) (int64, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Select("author_id").
		First(&blog, blogID).Error
	if err != nil {
		return 0, err
	}
	return blog.AuthorID, nil
}

func (r *blogRepository) Exists(ctx context.Context, blogID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ?", blogID).
		Count(&count).Error
	return count > 0, err
}

// ListAll retrieves every blog with its author, newest first
func (r *blogRepository) ListAll(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("id DESC").
		Find(&blogs).Error
	return blogs, err
}

// ListByAuthor retrieves a user's blogs, newest first
func (r *blogRepository) ListByAuthor(ctx context.Context, authorID int64) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("id DESC").
		Find(&blogs).Error
	return blogs, err
}

func (r *blogRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
