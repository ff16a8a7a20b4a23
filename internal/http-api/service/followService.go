package service

import (
	"context"
	"errors"

	"inkwell/internal/http-api/dto"
	"inkwell/internal/http-api/models"
	"inkwell/internal/http-api/repository"

	"gorm.io/gorm"
)

type FollowService interface {
	Follow(ctx context.Context, viewerID, targetID int64) (*dto.FollowStatusResponse, error)
	Unfollow(ctx context.Context, viewerID, targetID int64) (*dto.FollowStatusResponse, error)
	Status(ctx context.Context, viewerID, targetID int64) (*dto.FollowStatusResponse, error)
	Followers(ctx context.Context, userID int64) (*dto.FollowListResponse, error)
	Following(ctx context.Context, userID int64) (*dto.FollowListResponse, error)
	RemoveFollower(ctx context.Context, ownerID, followerID int64) error
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the directed edge viewer→target. Following someone already
// followed reports success; only the self-follow is an error.
func (s *followService) Follow(ctx context.Context, viewerID, targetID int64) (*dto.FollowStatusResponse, error) {
	if viewerID == targetID {
		return nil, ErrSelfFollow
	}

	if _, err := s.userRepo.FindByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.followRepo.Upsert(ctx, viewerID, targetID); err != nil {
		return nil, err
	}
	return &dto.FollowStatusResponse{Following: true}, nil
}

// Unfollow removes the edge if present; always reports following=false. The
// viewer==target case never held an edge, so it short-circuits.
func (s *followService) Unfollow(ctx context.Context, viewerID, targetID int64) (*dto.FollowStatusResponse, error) {
	if viewerID == targetID {
		return &dto.FollowStatusResponse{Following: false}, nil
	}
	if err := s.followRepo.Delete(ctx, viewerID, targetID); err != nil {
		return nil, err
	}
	return &dto.FollowStatusResponse{Following: false}, nil
}

func (s *followService) Status(ctx context.Context, viewerID, targetID int64) (*dto.FollowStatusResponse, error) {
	following, err := s.followRepo.Exists(ctx, viewerID, targetID)
	if err != nil {
		return nil, err
	}
	return &dto.FollowStatusResponse{Following: following}, nil
}

// Followers lists the users following userID.
func (s *followService) Followers(ctx context.Context, userID int64) (*dto.FollowListResponse, error) {
	follows, err := s.followRepo.FollowersOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return followListResponse(follows, func(f *models.Follow) *models.User { return &f.Follower }), nil
}

// Following lists the users userID follows.
func (s *followService) Following(ctx context.Context, userID int64) (*dto.FollowListResponse, error) {
	follows, err := s.followRepo.FollowingOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return followListResponse(follows, func(f *models.Follow) *models.User { return &f.Following }), nil
}

// RemoveFollower lets a profile owner drop an incoming edge. Idempotent:
// removing someone who never followed succeeds.
func (s *followService) RemoveFollower(ctx context.Context, ownerID, followerID int64) error {
	return s.followRepo.Delete(ctx, followerID, ownerID)
}

func followListResponse(follows []models.Follow, pick func(*models.Follow) *models.User) *dto.FollowListResponse {
	users := make([]dto.AuthorResponse, 0, len(follows))
	for i := range follows {
		users = append(users, dto.FromModelToAuthorResponse(pick(&follows[i])))
	}
	return &dto.FollowListResponse{Count: len(users), Users: users}
}
