package service

import (
	"context"

	"inkwell/internal/http-api/dto"
	"inkwell/internal/http-api/repository"
)

// EngagementService owns the like and save toggles. Repeated application of
// any operation converges without erroring: the unique constraints absorb
// duplicate inserts and deletes of missing rows succeed.
type EngagementService interface {
	Like(ctx context.Context, viewerID, blogID int64) (*dto.LikeStatusResponse, error)
	Unlike(ctx context.Context, viewerID, blogID int64) (*dto.LikeStatusResponse, error)
	LikeStatus(ctx context.Context, viewerID, blogID int64) (*dto.LikeStatusResponse, error)
	Save(ctx context.Context, viewerID, blogID int64) (*dto.SaveStatusResponse, error)
	Unsave(ctx context.Context, viewerID, blogID int64) (*dto.SaveStatusResponse, error)
	SavedStatus(ctx context.Context, viewerID, blogID int64) (*dto.SaveStatusResponse, error)
}

type engagementService struct {
	blogRepo  repository.BlogRepository
	likeRepo  repository.LikeRepository
	savedRepo repository.SavedPostRepository
}

func NewEngagementService(
	blogRepo repository.BlogRepository,
	likeRepo repository.LikeRepository,
	savedRepo repository.SavedPostRepository,
) EngagementService {
	return &engagementService{
		blogRepo:  blogRepo,
		likeRepo:  likeRepo,
		savedRepo: savedRepo,
	}
}

// Like records the viewer's like and returns the freshly recounted total.
func (s *engagementService) Like(ctx context.Context, viewerID, blogID int64) (*dto.LikeStatusResponse, error) {
	exists, err := s.blogRepo.Exists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBlogNotFound
	}

	if err := s.likeRepo.Upsert(ctx, viewerID, blogID); err != nil {
		return nil, err
	}

	count, err := s.likeRepo.CountByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStatusResponse{Liked: true, LikeCount: count}, nil
}

// Unlike removes the like if present; unliking a never-liked post succeeds.
func (s *engagementService) Unlike(ctx context.Context, viewerID, blogID int64) (*dto.LikeStatusResponse, error) {
	if err := s.likeRepo.Delete(ctx, viewerID, blogID); err != nil {
		return nil, err
	}
	count, err := s.likeRepo.CountByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStatusResponse{Liked: false, LikeCount: count}, nil
}

func (s *engagementService) LikeStatus(ctx context.Context, viewerID, blogID int64) (*dto.LikeStatusResponse, error) {
	count, err := s.likeRepo.CountByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	liked, err := s.likeRepo.Exists(ctx, viewerID, blogID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStatusResponse{Liked: liked, LikeCount: count}, nil
}

// Save bookmarks the blog for the viewer, same toggle shape as Like.
func (s *engagementService) Save(ctx context.Context, viewerID, blogID int64) (*dto.SaveStatusResponse, error) {
	exists, err := s.blogRepo.Exists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBlogNotFound
	}

	if err := s.savedRepo.Upsert(ctx, viewerID, blogID); err != nil {
		return nil, err
	}
	return &dto.SaveStatusResponse{Saved: true}, nil
}

func (s *engagementService) Unsave(ctx context.Context, viewerID, blogID int64) (*dto.SaveStatusResponse, error) {
	if err := s.savedRepo.Delete(ctx, viewerID, blogID); err != nil {
		return nil, err
	}
	return &dto.SaveStatusResponse{Saved: false}, nil
}

func (s *engagementService) SavedStatus(ctx context.Context, viewerID, blogID int64) (*dto.SaveStatusResponse, error) {
	saved, err := s.savedRepo.Exists(ctx, viewerID, blogID)
	if err != nil {
		return nil, err
	}
	return &dto.SaveStatusResponse{Saved: saved}, nil
}
