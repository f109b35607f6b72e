// File: internal/service/comment_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedsaim26/blog-platform/internal/domain/models"
	"github.com/syedsaim26/blog-platform/internal/domain/repository"
)

// CommentService implements commenting on blogs.
type CommentService struct {
	commentRepo repository.CommentRepository
	blogRepo    repository.BlogRepository
	logger      *zap.Logger
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, blogRepo repository.BlogRepository, logger *zap.Logger) *CommentService {
	return &CommentService{commentRepo: commentRepo, blogRepo: blogRepo, logger: logger}
}

// Create attaches a comment to an existing blog. Commenting on a missing
// blog yields ErrBlogNotFound.
func (s *CommentService) Create(ctx context.Context, authorID uuid.UUID, req models.CreateCommentRequest) (*models.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.blogRepo.FindByID(ctx, req.BlogID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:       uuid.New(),
		Content:  req.Content,
		BlogID:   req.BlogID,
		AuthorID: authorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.logger.Error("Failed to create comment", zap.Error(err))
		return nil, err
	}
	return comment, nil
}

// ListByBlog returns the comments on a blog, oldest first.
func (s *CommentService) ListByBlog(ctx context.Context, blogID uuid.UUID) ([]models.Comment, error) {
	if _, err := s.blogRepo.FindByID(ctx, blogID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FindByBlogID(ctx, blogID)
	if err != nil {
		s.logger.Error("Failed to list comments", zap.Error(err))
		return nil, err
	}
	return comments, nil
}
