package handler

import (
	"errors"
	"net/http"

	"inkwell/internal/http-api/middleware"
	"inkwell/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterRoutes registers follow routes on the user group. Mutations need a
// signed-in caller; the follower/following lists are readable by anyone.
func (h *FollowHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	router.POST("/follow/:id", requireAuth, h.Follow)
	router.DELETE("/follow/:id", requireAuth, h.Unfollow)
	// kept for older clients that POST instead of DELETE
	router.POST("/unfollow/:id", requireAuth, h.Unfollow)
	router.GET("/follow/status/:id", requireAuth, h.Status)

	router.GET("/:id/followers", h.Followers)
	router.GET("/:id/following", h.Following)
}

// Follow makes the caller follow the target user
// POST /api/v1/user/follow/:id
func (h *FollowHandler) Follow(c *gin.Context) {
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	status, err := h.followService.Follow(c.Request.Context(), userID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			c.JSON(http.StatusBadRequest, gin.H{"message": "You cannot follow yourself"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error following user"})
		}
		return
	}

	c.JSON(http.StatusOK, status)
}

// Unfollow removes the caller's follow of the target user
// DELETE /api/v1/user/follow/:id
func (h *FollowHandler) Unfollow(c *gin.Context) {
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	status, err := h.followService.Unfollow(c.Request.Context(), userID, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error unfollowing user"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Status reports whether the caller follows the target user
// GET /api/v1/user/follow/status/:id
func (h *FollowHandler) Status(c *gin.Context) {
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	status, err := h.followService.Status(c.Request.Context(), userID, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching follow status"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Followers lists the users following the given user
// GET /api/v1/user/:id/followers
func (h *FollowHandler) Followers(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.followService.Followers(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching followers"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// Following lists the users the given user follows
// GET /api/v1/user/:id/following
func (h *FollowHandler) Following(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.followService.Following(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching following"})
		return
	}

	c.JSON(http.StatusOK, list)
}
