package service

import (
	"context"

	"inkwell/internal/http-api/models"

	"github.com/stretchr/testify/mock"
)

// Shared repository mocks for the service tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	args := m.Called(ctx, id, hashed)
	return args.Error(0)
}

func (m *MockUserRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) UpdateOwned(ctx context.Context, blogID, authorID int64, title, content string) (int64, error) {
	args := m.Called(ctx, blogID, authorID, title, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogRepository) DeleteOwned(ctx context.Context, blogID, authorID int64) (int64, error) {
	args := m.Called(ctx, blogID, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, blogID int64) (*models.Blog, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) FindAuthorID(ctx context.Context, blogID int64) (int64, error) {
	args := m.Called(ctx, blogID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogRepository) Exists(ctx context.Context, blogID int64) (bool, error) {
	args := m.Called(ctx, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlogRepository) ListAll(ctx context.Context) ([]models.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) ListByAuthor(ctx context.Context, authorID int64) ([]models.Blog, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Upsert(ctx context.Context, userID, blogID int64) error {
	args := m.Called(ctx, userID, blogID)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, blogID int64) error {
	args := m.Called(ctx, userID, blogID)
	return args.Error(0)
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID, blogID int64) (bool, error) {
	args := m.Called(ctx, userID, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountByBlog(ctx context.Context, blogID int64) (int64, error) {
	args := m.Called(ctx, blogID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) CountByBlogIDs(ctx context.Context, blogIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, blogIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *MockLikeRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) BlogIDsLikedBy(ctx context.Context, userID int64, blogIDs []int64) ([]int64, error) {
	args := m.Called(ctx, userID, blogIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockLikeRepository) ListByUser(ctx context.Context, userID int64) ([]models.Like, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Like), args.Error(1)
}

type MockSavedPostRepository struct {
	mock.Mock
}

func (m *MockSavedPostRepository) Upsert(ctx context.Context, userID, blogID int64) error {
	args := m.Called(ctx, userID, blogID)
	return args.Error(0)
}

func (m *MockSavedPostRepository) Delete(ctx context.Context, userID, blogID int64) error {
	args := m.Called(ctx, userID, blogID)
	return args.Error(0)
}

func (m *MockSavedPostRepository) Exists(ctx context.Context, userID, blogID int64) (bool, error) {
	args := m.Called(ctx, userID, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSavedPostRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSavedPostRepository) BlogIDsSavedBy(ctx context.Context, userID int64, blogIDs []int64) ([]int64, error) {
	args := m.Called(ctx, userID, blogIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockSavedPostRepository) ListByUser(ctx context.Context, userID int64) ([]models.SavedPost, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SavedPost), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindOwnerID(ctx context.Context, commentID int64) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) DeleteOwned(ctx context.Context, commentID, userID int64) (int64, error) {
	args := m.Called(ctx, commentID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) TopLevelByBlog(ctx context.Context, blogID int64) ([]models.Comment, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) RepliesByParentIDs(ctx context.Context, parentIDs []int64) ([]models.Comment, error) {
	args := m.Called(ctx, parentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByUser(ctx context.Context, userID int64) ([]models.Comment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) CountByBlog(ctx context.Context, blogID int64) (int64, error) {
	args := m.Called(ctx, blogID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) CountByBlogIDs(ctx context.Context, blogIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, blogIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *MockCommentRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Upsert(ctx context.Context, followerID, followingID int64) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) FollowersOf(ctx context.Context, userID int64) ([]models.Follow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Follow), args.Error(1)
}

func (m *MockFollowRepository) FollowingOf(ctx context.Context, userID int64) ([]models.Follow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Follow), args.Error(1)
}

func (m *MockFollowRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
