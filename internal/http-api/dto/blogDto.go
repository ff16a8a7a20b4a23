package dto

import "inkwell/internal/http-api/models"

// CreateBlogRequest for creating a blog post
type CreateBlogRequest struct {
	Title   string `json:"title" binding:"required,max=300"`
	Content string `json:"content" binding:"required"`
}

// UpdateBlogRequest for updating a blog post. The id rides in the body,
// not the path; existing clients send it that way.
type UpdateBlogRequest struct {
	ID      int64  `json:"id" binding:"required"`
	Title   string `json:"title" binding:"required,max=300"`
	Content string `json:"content" binding:"required"`
}

// AuthorResponse is the embedded author shape on blog payloads
type AuthorResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}

// BlogResponse is a blog with its aggregated counts and the viewer-relative
// flags. Counts are recomputed from the relation tables on every read.
type BlogResponse struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	Author       AuthorResponse `json:"author"`
	LikeCount    int64          `json:"likeCount"`
	CommentCount int64          `json:"commentCount"`
	Liked        bool           `json:"liked"`
	Saved        bool           `json:"saved"`
}

// LikeStatusResponse for the like toggle and status endpoints
type LikeStatusResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// SaveStatusResponse for the save toggle and status endpoints
type SaveStatusResponse struct {
	Saved bool `json:"saved"`
}

// FromModelToAuthorResponse converts a User model to the embedded author shape
func FromModelToAuthorResponse(user *models.User) AuthorResponse {
	return AuthorResponse{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
	}
}
