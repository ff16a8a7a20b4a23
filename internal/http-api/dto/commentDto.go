package dto

import (
	"time"

	"inkwell/internal/http-api/models"
)

// CreateCommentRequest for creating a comment or a reply
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// CommentResponse is one comment with its author; top-level comments carry
// their replies, oldest first.
type CommentResponse struct {
	ID        int64             `json:"id"`
	Content   string            `json:"content"`
	BlogID    int64             `json:"blogId"`
	ParentID  *int64            `json:"parentId,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	User      AuthorResponse    `json:"user"`
	Replies   []CommentResponse `json:"replies,omitempty"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse
func FromModelToCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		BlogID:    comment.BlogID,
		ParentID:  comment.ParentID,
		CreatedAt: comment.CreatedAt,
		User:      FromModelToAuthorResponse(&comment.User),
	}
}
