// File: internal/domain/repository/comment_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/syedsaim26/blog-platform/internal/domain/models"
)

// CommentRepository defines the persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error

	// FindByBlogID returns the comments of a blog, oldest first.
	FindByBlogID(ctx context.Context, blogID uuid.UUID) ([]models.Comment, error)
}
