package handler

import (
	"errors"
	"net/http"

	"inkwell/internal/http-api/middleware"
	"inkwell/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
	commentService service.CommentService
	followService  service.FollowService
}

func NewProfileHandler(
	profileService service.ProfileService,
	commentService service.CommentService,
	followService service.FollowService,
) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		commentService: commentService,
		followService:  followService,
	}
}

// RegisterRoutes registers profile routes on the user group. Reads work with
// or without a token; the viewer only changes liked/saved/isFollowing flags.
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	router.GET("/profile/:id", optionalAuth, h.Profile)
	router.GET("/profile/:id/posts", optionalAuth, h.Posts)
	router.GET("/profile/:id/likes", optionalAuth, h.Likes)
	router.GET("/profile/:id/comments", h.Comments)
	router.GET("/profile/:id/saved", requireAuth, h.Saved)

	router.DELETE("/profile/comments/:commentId", requireAuth, h.DeleteComment)
	router.DELETE("/profile/followers/:followerId", requireAuth, h.RemoveFollower)
}

// Profile returns the user's public profile with aggregate stats
// GET /api/v1/user/profile/:id
func (h *ProfileHandler) Profile(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	viewerID := middleware.ViewerID(c)
	profile, err := h.profileService.Profile(c.Request.Context(), subjectID, viewerID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Posts returns the user's published blogs
// GET /api/v1/user/profile/:id/posts
func (h *ProfileHandler) Posts(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	viewerID := middleware.ViewerID(c)
	blogs, err := h.profileService.Posts(c.Request.Context(), subjectID, viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

// Likes returns the blogs the user has liked
// GET /api/v1/user/profile/:id/likes
func (h *ProfileHandler) Likes(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	viewerID := middleware.ViewerID(c)
	likes, err := h.profileService.Likes(c.Request.Context(), subjectID, viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching likes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// Comments returns the user's comment history with the blogs they sit on
// GET /api/v1/user/profile/:id/comments
func (h *ProfileHandler) Comments(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.profileService.Comments(c.Request.Context(), subjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Saved returns the caller's reading list. Only the owner may read it.
// GET /api/v1/user/profile/:id/saved
func (h *ProfileHandler) Saved(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	viewerID := middleware.ViewerID(c)
	saved, err := h.profileService.Saved(c.Request.Context(), subjectID, viewerID)
	if err != nil {
		if errors.Is(err, service.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only view your own saved posts"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching saved posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"savedPosts": saved})
}

// DeleteComment removes a comment the caller wrote
// DELETE /api/v1/user/profile/comments/:commentId
func (h *ProfileHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.commentService.DeleteOwn(c.Request.Context(), commentID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only delete your own comments"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting comment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveFollower detaches a follower from the caller's profile
// DELETE /api/v1/user/profile/followers/:followerId
func (h *ProfileHandler) RemoveFollower(c *gin.Context) {
	followerID, ok := parseIDParam(c, "followerId")
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.followService.RemoveFollower(c.Request.Context(), userID, followerID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing follower"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
