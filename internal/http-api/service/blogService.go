package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"inkwell/internal/cache"
	"inkwell/internal/http-api/dto"
	"inkwell/internal/http-api/models"
	"inkwell/internal/http-api/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BlogService interface {
	Create(ctx context.Context, authorID int64, req dto.CreateBlogRequest) (int64, error)
	Update(ctx context.Context, actorID int64, req dto.UpdateBlogRequest) (int64, error)
	GetByID(ctx context.Context, blogID int64, viewerID *int64) (*dto.BlogResponse, error)
	ListAll(ctx context.Context, viewerID *int64) ([]dto.BlogResponse, error)
	Delete(ctx context.Context, blogID, actorID int64) error
}

type blogService struct {
	blogRepo repository.BlogRepository
	agg      blogAggregator
	cache    cache.Cache
	log      *zap.Logger
}

func NewBlogService(
	blogRepo repository.BlogRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	savedRepo repository.SavedPostRepository,
	c cache.Cache,
	log *zap.Logger,
) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		agg:      blogAggregator{likeRepo: likeRepo, commentRepo: commentRepo, savedRepo: savedRepo},
		cache:    c,
		log:      log,
	}
}

// cachedBlog is the read-through cache payload: the blog row and its author
// only. Counts and viewer flags are per-read and never cached.
type cachedBlog struct {
	ID      int64              `json:"id"`
	Title   string             `json:"title"`
	Content string             `json:"content"`
	Author  dto.AuthorResponse `json:"author"`
}

func blogCacheKey(blogID int64) string {
	return fmt.Sprintf("blog:%d", blogID)
}

// Create a new blog post
func (s *blogService) Create(ctx context.Context, authorID int64, req dto.CreateBlogRequest) (int64, error) {
	blog := &models.Blog{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return 0, err
	}
	return blog.ID, nil
}

// Update edits a blog post; only the author may update it.
func (s *blogService) Update(ctx context.Context, actorID int64, req dto.UpdateBlogRequest) (int64, error) {
	rows, err := s.blogRepo.UpdateOwned(ctx, req.ID, actorID, req.Title, req.Content)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		// Zero rows means either no such blog or not the author; look up the
		// owner only to pick the right error for the response.
		if _, err := s.blogRepo.FindAuthorID(ctx, req.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrBlogNotFound
			}
			return 0, err
		}
		return 0, ErrNotOwner
	}

	s.invalidate(ctx, req.ID)
	return req.ID, nil
}

// GetByID returns a blog with fresh counts and viewer flags. The blog row
// itself is read through the cache.
func (s *blogService) GetByID(ctx context.Context, blogID int64, viewerID *int64) (*dto.BlogResponse, error) {
	blog, err := s.loadBlog(ctx, blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return s.agg.decorateOne(ctx, blog, viewerID)
}

// ListAll returns every blog with counts and the viewer's flags, computed
// with batched queries.
func (s *blogService) ListAll(ctx context.Context, viewerID *int64) ([]dto.BlogResponse, error) {
	blogs, err := s.blogRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.agg.decorate(ctx, blogs, viewerID)
}

// Delete removes a blog; only the author may delete it. Likes, comments and
// saved posts cascade at the storage layer.
func (s *blogService) Delete(ctx context.Context, blogID, actorID int64) error {
	rows, err := s.blogRepo.DeleteOwned(ctx, blogID, actorID)
	if err != nil {
		return err
	}
	if rows == 0 {
		if _, err := s.blogRepo.FindAuthorID(ctx, blogID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBlogNotFound
			}
			return err
		}
		return ErrNotOwner
	}

	s.invalidate(ctx, blogID)
	return nil
}

// loadBlog reads the blog row through the cache. Cache failures degrade to a
// direct read; they are logged, never surfaced.
func (s *blogService) loadBlog(ctx context.Context, blogID int64) (*models.Blog, error) {
	key := blogCacheKey(blogID)
	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var cb cachedBlog
		if err := json.Unmarshal(raw, &cb); err == nil {
			return &models.Blog{
				ID:       cb.ID,
				Title:    cb.Title,
				Content:  cb.Content,
				AuthorID: cb.Author.ID,
				Author: models.User{
					ID:       cb.Author.ID,
					Name:     cb.Author.Name,
					Username: cb.Author.Username,
				},
			}, nil
		}
	} else if err != nil {
		s.log.Warn("blog cache read failed", zap.Int64("blog_id", blogID), zap.Error(err))
	}

	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(cachedBlog{
		ID:      blog.ID,
		Title:   blog.Title,
		Content: blog.Content,
		Author:  dto.FromModelToAuthorResponse(&blog.Author),
	})
	if err == nil {
		if err := s.cache.Set(ctx, key, raw); err != nil {
			s.log.Warn("blog cache write failed", zap.Int64("blog_id", blogID), zap.Error(err))
		}
	}
	return blog, nil
}

func (s *blogService) invalidate(ctx context.Context, blogID int64) {
	if err := s.cache.Delete(ctx, blogCacheKey(blogID)); err != nil {
		s.log.Warn("blog cache invalidation failed", zap.Int64("blog_id", blogID), zap.Error(err))
	}
}
