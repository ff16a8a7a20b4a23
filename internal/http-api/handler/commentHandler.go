package handler

import (
	"errors"
	"net/http"

	"inkwell/internal/http-api/dto"
	"inkwell/internal/http-api/middleware"
	"inkwell/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes registers comment routes on the blog group.
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/:id/comments", h.ListThread)
	router.POST("/:id/comments", h.Create)
	router.POST("/comment/:id/reply", h.Reply)
}

// ListThread returns top-level comments with their replies attached
// GET /api/v1/blog/:id/comments
func (h *CommentHandler) ListThread(c *gin.Context) {
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListThread(c.Request.Context(), blogID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create adds a top-level comment to a blog
// POST /api/v1/blog/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Comment content is required"})
		return
	}

	userID := middleware.CurrentUserID(c)
	comment, err := h.commentService.Create(c.Request.Context(), userID, blogID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyContent):
			c.JSON(http.StatusLengthRequired, gin.H{"message": "Comment content is required"})
		case errors.Is(err, service.ErrBlogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating comment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Reply adds a reply to a top-level comment. Replying to a reply is rejected
// so threads stay one level deep.
// POST /api/v1/blog/comment/:id/reply
func (h *CommentHandler) Reply(c *gin.Context) {
	parentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Reply content is required"})
		return
	}

	userID := middleware.CurrentUserID(c)
	reply, err := h.commentService.Reply(c.Request.Context(), userID, parentID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyContent):
			c.JSON(http.StatusLengthRequired, gin.H{"message": "Reply content is required"})
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		case errors.Is(err, service.ErrReplyDepth):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Replies can only be added to top-level comments"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating reply"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": reply})
}
