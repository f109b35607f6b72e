// File: internal/service/blog_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/syedsaim26/blog-platform/internal/domain/errors"
	"github.com/syedsaim26/blog-platform/internal/domain/models"
	"github.com/syedsaim26/blog-platform/internal/domain/repository"
	"github.com/syedsaim26/blog-platform/internal/utils/metrics"
)

// BlogService implements blog CRUD on top of the repository, with a redis
// read-through cache for single blogs and the full listing. Cache failures
// are logged and degrade to the database; they never fail the request.
type BlogService struct {
	blogRepo repository.BlogRepository
	cache    repository.BlogCache
	logger   *zap.Logger
}

// NewBlogService creates a new BlogService. The cache may be nil, in which
// case every read goes to the database.
func NewBlogService(blogRepo repository.BlogRepository, cache repository.BlogCache, logger *zap.Logger) *BlogService {
	return &BlogService{blogRepo: blogRepo, cache: cache, logger: logger}
}

// Create persists a new blog authored by the given user and invalidates the
// cached listing.
func (s *BlogService) Create(ctx context.Context, authorID uuid.UUID, req models.CreateBlogRequest) (*models.Blog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	blog := &models.Blog{
		ID:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		PhotoPath: req.PhotoPath,
		AuthorID:  authorID,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		s.logger.Error("Failed to create blog", zap.Error(err))
		return nil, err
	}

	s.invalidateList(ctx)
	s.logger.Info("Blog created", zap.String("blog_id", blog.ID.String()), zap.String("author_id", authorID.String()))
	return blog, nil
}

// GetByID returns a single blog, serving from cache when possible.
func (s *BlogService) GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	if s.cache != nil {
		blog, err := s.cache.GetBlog(ctx, id)
		if err != nil {
			s.logger.Warn("Blog cache read failed", zap.Error(err))
			metrics.CacheOperationsTotal.WithLabelValues("get", "error").Inc()
		} else if blog != nil {
			metrics.CacheOperationsTotal.WithLabelValues("get", "hit").Inc()
			return blog, nil
		} else {
			metrics.CacheOperationsTotal.WithLabelValues("get", "miss").Inc()
		}
	}

	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetBlog(ctx, blog); err != nil {
			s.logger.Warn("Blog cache write failed", zap.Error(err))
		}
	}
	return blog, nil
}

// List returns all blogs, newest first, serving from cache when possible.
func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	if s.cache != nil {
		blogs, err := s.cache.GetBlogList(ctx)
		if err != nil {
			s.logger.Warn("Blog list cache read failed", zap.Error(err))
			metrics.CacheOperationsTotal.WithLabelValues("get", "error").Inc()
		} else if blogs != nil {
			metrics.CacheOperationsTotal.WithLabelValues("get", "hit").Inc()
			return blogs, nil
		} else {
			metrics.CacheOperationsTotal.WithLabelValues("get", "miss").Inc()
		}
	}

	blogs, err := s.blogRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list blogs", zap.Error(err))
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetBlogList(ctx, blogs); err != nil {
			s.logger.Warn("Blog list cache write failed", zap.Error(err))
		}
	}
	return blogs, nil
}

// Update applies the non-nil fields of the request to the blog. Only the
// author may update their blog; anyone else gets ErrForbidden.
func (s *BlogService) Update(ctx context.Context, userID uuid.UUID, req models.UpdateBlogRequest) (*models.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if blog.AuthorID != userID {
		return nil, domainErrors.ErrForbidden
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if blog.Title == "" || blog.Content == "" {
		return nil, domainErrors.NewValidationError("title and content must not be empty")
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		s.logger.Error("Failed to update blog", zap.Error(err))
		return nil, err
	}

	s.invalidateBlog(ctx, blog.ID)
	s.invalidateList(ctx)
	return blog, nil
}

// Delete removes a blog and its comments (the database cascades). Only the
// author may delete their blog.
func (s *BlogService) Delete(ctx context.Context, userID, blogID uuid.UUID) error {
	blog, err := s.blogRepo.FindByID(ctx, blogID)
	if err != nil {
		return err
	}
	if blog.AuthorID != userID {
		return domainErrors.ErrForbidden
	}

	if err := s.blogRepo.Delete(ctx, blogID); err != nil {
		s.logger.Error("Failed to delete blog", zap.Error(err))
		return err
	}

	s.invalidateBlog(ctx, blogID)
	s.invalidateList(ctx)
	s.logger.Info("Blog deleted", zap.String("blog_id", blogID.String()))
	return nil
}

func (s *BlogService) invalidateBlog(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteBlog(ctx, id); err != nil {
		s.logger.Warn("Blog cache invalidation failed", zap.Error(err))
		metrics.CacheOperationsTotal.WithLabelValues("delete", "error").Inc()
	}
}

func (s *BlogService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteBlogList(ctx); err != nil {
		s.logger.Warn("Blog list cache invalidation failed", zap.Error(err))
		metrics.CacheOperationsTotal.WithLabelValues("delete", "error").Inc()
	}
}
