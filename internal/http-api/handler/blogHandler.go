package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"inkwell/internal/http-api/dto"
	"inkwell/internal/http-api/middleware"
	"inkwell/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService       service.BlogService
	engagementService service.EngagementService
}

func NewBlogHandler(blogService service.BlogService, engagementService service.EngagementService) *BlogHandler {
	return &BlogHandler{
		blogService:       blogService,
		engagementService: engagementService,
	}
}

// RegisterRoutes registers blog CRUD and like/save routes.
// The whole group sits behind RequireAuth upstream.
func (h *BlogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", h.Create)
	router.PUT("", h.Update)
	router.GET("/bulk", h.ListAll)
	router.GET("/:id", h.GetByID)
	router.DELETE("/:id", h.Delete)

	router.POST("/:id/like", h.Like)
	router.DELETE("/:id/like", h.Unlike)
	router.GET("/:id/likes", h.LikeStatus)

	router.POST("/:id/save", h.Save)
	router.DELETE("/:id/save", h.Unsave)
	router.GET("/:id/saved", h.SavedStatus)
}

// Create publishes a new blog post
// POST /api/v1/blog
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Inputs not correct"})
		return
	}

	userID := middleware.CurrentUserID(c)
	id, err := h.blogService.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Update edits a blog owned by the caller
// PUT /api/v1/blog
func (h *BlogHandler) Update(c *gin.Context) {
	var req dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Inputs not correct"})
		return
	}

	userID := middleware.CurrentUserID(c)
	id, err := h.blogService.Update(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only update your own blogs"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating blog"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListAll returns every blog, newest first, decorated for the viewer
// GET /api/v1/blog/bulk
func (h *BlogHandler) ListAll(c *gin.Context) {
	viewerID := middleware.ViewerID(c)
	blogs, err := h.blogService.ListAll(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching blogs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

// GetByID returns one blog with its engagement state
// GET /api/v1/blog/:id
func (h *BlogHandler) GetByID(c *gin.Context) {
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	viewerID := middleware.ViewerID(c)
	blog, err := h.blogService.GetByID(c.Request.Context(), blogID, viewerID)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error while fetching blog post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// Delete removes a blog owned by the caller
// DELETE /api/v1/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.blogService.Delete(c.Request.Context(), blogID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only delete your own blogs"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting blog"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Like marks the blog as liked by the caller
// POST /api/v1/blog/:id/like
func (h *BlogHandler) Like(c *gin.Context) {
	h.toggleLike(c, h.engagementService.Like)
}

// Unlike removes the caller's like
// DELETE /api/v1/blog/:id/like
func (h *BlogHandler) Unlike(c *gin.Context) {
	h.toggleLike(c, h.engagementService.Unlike)
}

// LikeStatus returns the like count and whether the caller liked the blog
// GET /api/v1/blog/:id/likes
func (h *BlogHandler) LikeStatus(c *gin.Context) {
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	status, err := h.engagementService.LikeStatus(c.Request.Context(), userID, blogID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching like status"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Save bookmarks the blog for the caller
// POST /api/v1/blog/:id/save
func (h *BlogHandler) Save(c *gin.Context) {
	h.toggleSave(c, h.engagementService.Save)
}

// Unsave removes the caller's bookmark
// DELETE /api/v1/blog/:id/save
func (h *BlogHandler) Unsave(c *gin.Context) {
	h.toggleSave(c, h.engagementService.Unsave)
}

// SavedStatus returns whether the caller saved the blog
// GET /api/v1/blog/:id/saved
func (h *BlogHandler) SavedStatus(c *gin.Context) {
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	status, err := h.engagementService.SavedStatus(c.Request.Context(), userID, blogID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching saved status"})
		return
	}

	c.JSON(http.StatusOK, status)
}

type likeToggle func(ctx context.Context, userID, blogID int64) (*dto.LikeStatusResponse, error)
type saveToggle func(ctx context.Context, userID, blogID int64) (*dto.SaveStatusResponse, error)

func (h *BlogHandler) toggleLike(c *gin.Context, op likeToggle) {
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	status, err := op(c.Request.Context(), userID, blogID)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating like"})
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *BlogHandler) toggleSave(c *gin.Context, op saveToggle) {
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := middleware.CurrentUserID(c)
	status, err := op(c.Request.Context(), userID, blogID)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating saved post"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// parseIDParam reads a positive int64 path parameter, answering 400 itself on
// bad input.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name})
		return 0, false
	}
	return id, true
}
