// File: internal/domain/repository/blog_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/syedsaim26/blog-platform/internal/domain/models"
)

// BlogRepository defines the persistence operations for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error

	// FindByID returns the blog with the given ID, or ErrBlogNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)

	// FindAll returns all blogs, newest first.
	FindAll(ctx context.Context) ([]models.Blog, error)

	// Update persists the mutable fields of the blog, or returns
	// ErrBlogNotFound when no row matches.
	Update(ctx context.Context, blog *models.Blog) error

	// Delete removes the blog and, via the schema, its comments. Returns
	// ErrBlogNotFound when no row matches.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BlogCache fronts blog reads. A miss is reported as (nil, nil); cache
// failures are surfaced so callers can log them, but must never fail the
// request.
type BlogCache interface {
	GetBlog(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	SetBlog(ctx context.Context, blog *models.Blog) error
	DeleteBlog(ctx context.Context, id uuid.UUID) error

	GetBlogList(ctx context.Context) ([]models.Blog, error)
	SetBlogList(ctx context.Context, blogs []models.Blog) error
	DeleteBlogList(ctx context.Context) error
}
