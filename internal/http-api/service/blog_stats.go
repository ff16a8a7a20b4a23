package service

import (
	"context"

	"inkwell/internal/http-api/dto"
	"inkwell/internal/http-api/models"
	"inkwell/internal/http-api/repository"

	"github.com/samber/lo"
)

// blogAggregator turns rows from the relation tables into per-blog counts and
// viewer-relative flags. Counts are recomputed from the relations on every
// read; nothing here reads a denormalized counter.
type blogAggregator struct {
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	savedRepo   repository.SavedPostRepository
}

// decorate aggregates a whole page of blogs. It issues two grouped count
// queries, and for a signed-in viewer exactly two batched membership checks
// (one against likes, one against saved posts) regardless of page size.
func (a *blogAggregator) decorate(ctx context.Context, blogs []models.Blog, viewerID *int64) ([]dto.BlogResponse, error) {
	if len(blogs) == 0 {
		return []dto.BlogResponse{}, nil
	}

	blogIDs := lo.Map(blogs, func(b models.Blog, _ int) int64 { return b.ID })

	likeCounts, err := a.likeRepo.CountByBlogIDs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}
	commentCounts, err := a.commentRepo.CountByBlogIDs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}

	likedSet := map[int64]struct{}{}
	savedSet := map[int64]struct{}{}
	if viewerID != nil {
		likedIDs, err := a.likeRepo.BlogIDsLikedBy(ctx, *viewerID, blogIDs)
		if err != nil {
			return nil, err
		}
		savedIDs, err := a.savedRepo.BlogIDsSavedBy(ctx, *viewerID, blogIDs)
		if err != nil {
			return nil, err
		}
		likedSet = lo.SliceToMap(likedIDs, func(id int64) (int64, struct{}) { return id, struct{}{} })
		savedSet = lo.SliceToMap(savedIDs, func(id int64) (int64, struct{}) { return id, struct{}{} })
	}

	responses := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		blog := &blogs[i]
		_, liked := likedSet[blog.ID]
		_, saved := savedSet[blog.ID]
		responses = append(responses, dto.BlogResponse{
			ID:           blog.ID,
			Title:        blog.Title,
			Content:      blog.Content,
			Author:       dto.FromModelToAuthorResponse(&blog.Author),
			LikeCount:    likeCounts[blog.ID],
			CommentCount: commentCounts[blog.ID],
			Liked:        liked,
			Saved:        saved,
		})
	}
	return responses, nil
}

// decorateOne aggregates a single blog with point lookups.
func (a *blogAggregator) decorateOne(ctx context.Context, blog *models.Blog, viewerID *int64) (*dto.BlogResponse, error) {
	likeCount, err := a.likeRepo.CountByBlog(ctx, blog.ID)
	if err != nil {
		return nil, err
	}
	commentCount, err := a.commentRepo.CountByBlog(ctx, blog.ID)
	if err != nil {
		return nil, err
	}

	var liked, saved bool
	if viewerID != nil {
		if liked, err = a.likeRepo.Exists(ctx, *viewerID, blog.ID); err != nil {
			return nil, err
		}
		if saved, err = a.savedRepo.Exists(ctx, *viewerID, blog.ID); err != nil {
			return nil, err
		}
	}

	return &dto.BlogResponse{
		ID:           blog.ID,
		Title:        blog.Title,
		Content:      blog.Content,
		Author:       dto.FromModelToAuthorResponse(&blog.Author),
		LikeCount:    likeCount,
		CommentCount: commentCount,
		Liked:        liked,
		Saved:        saved,
	}, nil
}
