package service

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/http-api/dto"
	"inkwell/internal/http-api/models"
	"inkwell/internal/http-api/repository"

	"gorm.io/gorm"
)

type CommentService interface {
	ListThread(ctx context.Context, blogID int64) ([]dto.CommentResponse, error)
	Create(ctx context.Context, authorID, blogID int64, content string) (*dto.CommentResponse, error)
	Reply(ctx context.Context, authorID, parentID int64, content string) (*dto.CommentResponse, error)
	DeleteOwn(ctx context.Context, commentID, actorID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	blogRepo    repository.BlogRepository
}

func NewCommentService(commentRepo repository.CommentRepository, blogRepo repository.BlogRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
	}
}

// ListThread returns the two-level comment tree for a blog: top-level
// comments newest-first, each carrying its replies oldest-first. One query
// for the top level and one batched query for all replies.
func (s *commentService) ListThread(ctx context.Context, blogID int64) ([]dto.CommentResponse, error) {
	topLevel, err := s.commentRepo.TopLevelByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if len(topLevel) == 0 {
		return []dto.CommentResponse{}, nil
	}

	parentIDs := make([]int64, 0, len(topLevel))
	for i := range topLevel {
		parentIDs = append(parentIDs, topLevel[i].ID)
	}
	replies, err := s.commentRepo.RepliesByParentIDs(ctx, parentIDs)
	if err != nil {
		return nil, err
	}

	repliesByParent := make(map[int64][]dto.CommentResponse, len(topLevel))
	for i := range replies {
		reply := &replies[i]
		repliesByParent[*reply.ParentID] = append(repliesByParent[*reply.ParentID], dto.FromModelToCommentResponse(reply))
	}

	thread := make([]dto.CommentResponse, 0, len(topLevel))
	for i := range topLevel {
		comment := dto.FromModelToCommentResponse(&topLevel[i])
		comment.Replies = repliesByParent[topLevel[i].ID]
		thread = append(thread, comment)
	}
	return thread, nil
}

// Create adds a top-level comment to an existing blog.
func (s *commentService) Create(ctx context.Context, authorID, blogID int64, content string) (*dto.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	exists, err := s.blogRepo.Exists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBlogNotFound
	}

	comment := &models.Comment{
		Content: content,
		UserID:  authorID,
		BlogID:  blogID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.reload(ctx, comment.ID)
}

// Reply adds a reply under a top-level comment. The blog id is copied from
// the parent row, never taken from the client, and replying to a reply is
// rejected so the stored tree stays two levels deep.
func (s *commentService) Reply(ctx context.Context, authorID, parentID int64, content string) (*dto.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if parent.IsReply() {
		return nil, ErrReplyDepth
	}

	reply := &models.Comment{
		Content:  content,
		UserID:   authorID,
		BlogID:   parent.BlogID,
		ParentID: &parent.ID,
	}
	if err := s.commentRepo.Create(ctx, reply); err != nil {
		return nil, err
	}
	return s.reload(ctx, reply.ID)
}

// DeleteOwn deletes a comment only when actorID wrote it. The conditional
// delete is atomic; the follow-up lookup only shapes the error.
func (s *commentService) DeleteOwn(ctx context.Context, commentID, actorID int64) error {
	rows, err := s.commentRepo.DeleteOwned(ctx, commentID, actorID)
	if err != nil {
		return err
	}
	if rows == 0 {
		if _, err := s.commentRepo.FindOwnerID(ctx, commentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}
		return ErrNotOwner
	}
	return nil
}

// reload re-reads a freshly created comment with its author loaded.
func (s *commentService) reload(ctx context.Context, commentID int64) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToCommentResponse(comment)
	return &resp, nil
}
