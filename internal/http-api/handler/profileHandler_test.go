package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/http-api/dto"
	"inkwell/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProfileService mocks the ProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Profile(ctx context.Context, subjectID int64, viewerID *int64) (*dto.ProfileResponse, error) {
	args := m.Called(ctx, subjectID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileResponse), args.Error(1)
}

func (m *MockProfileService) Posts(ctx context.Context, subjectID int64, viewerID *int64) ([]dto.BlogResponse, error) {
	args := m.Called(ctx, subjectID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BlogResponse), args.Error(1)
}

func (m *MockProfileService) Likes(ctx context.Context, subjectID int64, viewerID *int64) ([]dto.ProfileLikeResponse, error) {
	args := m.Called(ctx, subjectID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProfileLikeResponse), args.Error(1)
}

func (m *MockProfileService) Comments(ctx context.Context, subjectID int64) ([]dto.ProfileCommentResponse, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProfileCommentResponse), args.Error(1)
}

func (m *MockProfileService) Saved(ctx context.Context, subjectID int64, viewerID *int64) ([]dto.ProfileSavedResponse, error) {
	args := m.Called(ctx, subjectID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProfileSavedResponse), args.Error(1)
}

// anonymous leaves the context untouched, like OptionalAuth without a token
func anonymous() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

func setupProfileRouter(auth gin.HandlerFunc, profileSvc *MockProfileService, commentSvc *MockCommentService, followSvc *MockFollowService) *gin.Engine {
	router := setupRouter()
	h := NewProfileHandler(profileSvc, commentSvc, followSvc)
	group := router.Group("/user")
	h.RegisterRoutes(group, auth, auth)
	return router
}

func TestProfile_Anonymous(t *testing.T) {
	profileSvc := new(MockProfileService)
	router := setupProfileRouter(anonymous(), profileSvc, new(MockCommentService), new(MockFollowService))

	profileSvc.On("Profile", mock.Anything, int64(9), (*int64)(nil)).Return(&dto.ProfileResponse{
		Profile: dto.Profile{ID: 9, Name: "Writer", Username: "writer", IsFollowing: false},
		Stats:   dto.ProfileStats{BlogCount: 3},
	}, nil)

	req, _ := http.NewRequest("GET", "/user/profile/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response dto.ProfileResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.False(t, response.Profile.IsFollowing)
	assert.Equal(t, int64(3), response.Stats.BlogCount)
}

func TestProfile_UserMissing(t *testing.T) {
	profileSvc := new(MockProfileService)
	router := setupProfileRouter(anonymous(), profileSvc, new(MockCommentService), new(MockFollowService))

	profileSvc.On("Profile", mock.Anything, int64(99), (*int64)(nil)).Return(nil, service.ErrUserNotFound)

	req, _ := http.NewRequest("GET", "/user/profile/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaved_NotOwner(t *testing.T) {
	profileSvc := new(MockProfileService)
	router := setupProfileRouter(asUser(7), profileSvc, new(MockCommentService), new(MockFollowService))

	viewer := int64(7)
	profileSvc.On("Saved", mock.Anything, int64(9), &viewer).Return(nil, service.ErrNotOwner)

	req, _ := http.NewRequest("GET", "/user/profile/9/saved", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteProfileComment_NotOwner(t *testing.T) {
	commentSvc := new(MockCommentService)
	router := setupProfileRouter(asUser(7), new(MockProfileService), commentSvc, new(MockFollowService))

	commentSvc.On("DeleteOwn", mock.Anything, int64(10), int64(7)).Return(service.ErrNotOwner)

	req, _ := http.NewRequest("DELETE", "/user/profile/comments/10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRemoveFollower_Success(t *testing.T) {
	followSvc := new(MockFollowService)
	router := setupProfileRouter(asUser(7), new(MockProfileService), new(MockCommentService), followSvc)

	followSvc.On("RemoveFollower", mock.Anything, int64(7), int64(9)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/user/profile/followers/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]bool
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response["success"])
}
