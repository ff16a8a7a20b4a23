package service

import (
	"context"
	"errors"

	"inkwell/internal/http-api/dto"
	"inkwell/internal/http-api/models"
	"inkwell/internal/http-api/repository"

	"gorm.io/gorm"
)

// ProfileService aggregates a user's public profile: counters over the
// relation tables plus the viewer-relative following flag.
type ProfileService interface {
	Profile(ctx context.Context, subjectID int64, viewerID *int64) (*dto.ProfileResponse, error)
	Posts(ctx context.Context, subjectID int64, viewerID *int64) ([]dto.BlogResponse, error)
	Likes(ctx context.Context, subjectID int64, viewerID *int64) ([]dto.ProfileLikeResponse, error)
	Comments(ctx context.Context, subjectID int64) ([]dto.ProfileCommentResponse, error)
	Saved(ctx context.Context, subjectID int64, viewerID *int64) ([]dto.ProfileSavedResponse, error)
}

type profileService struct {
	userRepo    repository.UserRepository
	blogRepo    repository.BlogRepository
	followRepo  repository.FollowRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	savedRepo   repository.SavedPostRepository
	agg         blogAggregator
}

func NewProfileService(
	userRepo repository.UserRepository,
	blogRepo repository.BlogRepository,
	followRepo repository.FollowRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	savedRepo repository.SavedPostRepository,
) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		blogRepo:    blogRepo,
		followRepo:  followRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		savedRepo:   savedRepo,
		agg:         blogAggregator{likeRepo: likeRepo, commentRepo: commentRepo, savedRepo: savedRepo},
	}
}

// Profile returns the header and stats for a user's profile page. All
// counters are recounted from the relation tables.
func (s *profileService) Profile(ctx context.Context, subjectID int64, viewerID *int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	followerCount, err := s.followRepo.CountFollowers(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	blogCount, err := s.blogRepo.CountByAuthor(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	likeCount, err := s.likeRepo.CountByUser(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.commentRepo.CountByUser(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	savedCount, err := s.savedRepo.CountByUser(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	// Anonymous viewers and the owner get isFollowing=false
	isFollowing := false
	if viewerID != nil && *viewerID != subjectID {
		isFollowing, err = s.followRepo.Exists(ctx, *viewerID, subjectID)
		if err != nil {
			return nil, err
		}
	}

	return &dto.ProfileResponse{
		Profile: dto.Profile{
			ID:             user.ID,
			Name:           user.Name,
			Username:       user.Username,
			FollowerCount:  followerCount,
			FollowingCount: followingCount,
			BlogCount:      blogCount,
			IsFollowing:    isFollowing,
		},
		Stats: dto.ProfileStats{
			FollowerCount:  followerCount,
			FollowingCount: followingCount,
			BlogCount:      blogCount,
			LikeCount:      likeCount,
			CommentCount:   commentCount,
			SavedCount:     savedCount,
		},
	}, nil
}

// Posts lists the subject's blogs with the viewer's flags, batched.
func (s *profileService) Posts(ctx context.Context, subjectID int64, viewerID *int64) ([]dto.BlogResponse, error) {
	blogs, err := s.blogRepo.ListByAuthor(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	return s.agg.decorate(ctx, blogs, viewerID)
}

// Likes lists the blogs the subject liked, decorated for the viewer.
func (s *profileService) Likes(ctx context.Context, subjectID int64, viewerID *int64) ([]dto.ProfileLikeResponse, error) {
	likes, err := s.likeRepo.ListByUser(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	blogs := make([]models.Blog, 0, len(likes))
	for i := range likes {
		blogs = append(blogs, likes[i].Blog)
	}
	decorated, err := s.agg.decorate(ctx, blogs, viewerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProfileLikeResponse, 0, len(likes))
	for i := range likes {
		out = append(out, dto.ProfileLikeResponse{
			ID:        likes[i].ID,
			CreatedAt: likes[i].CreatedAt,
			Blog:      decorated[i],
		})
	}
	return out, nil
}

// Comments lists the subject's comments with the blog each belongs to.
func (s *profileService) Comments(ctx context.Context, subjectID int64) ([]dto.ProfileCommentResponse, error) {
	comments, err := s.commentRepo.ListByUser(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProfileCommentResponse, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		out = append(out, dto.ProfileCommentResponse{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			BlogID:    c.BlogID,
			Blog:      dto.BlogRef{ID: c.Blog.ID, Title: c.Blog.Title},
		})
	}
	return out, nil
}

// Saved lists the subject's saved posts. Only the owner may see them.
func (s *profileService) Saved(ctx context.Context, subjectID int64, viewerID *int64) ([]dto.ProfileSavedResponse, error) {
	if viewerID == nil || *viewerID != subjectID {
		return nil, ErrNotOwner
	}

	saved, err := s.savedRepo.ListByUser(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	blogs := make([]models.Blog, 0, len(saved))
	for i := range saved {
		blogs = append(blogs, saved[i].Blog)
	}
	decorated, err := s.agg.decorate(ctx, blogs, viewerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProfileSavedResponse, 0, len(saved))
	for i := range saved {
		out = append(out, dto.ProfileSavedResponse{
			ID:        saved[i].ID,
			CreatedAt: saved[i].CreatedAt,
			Blog:      decorated[i],
		})
	}
	return out, nil
}
