// File: internal/service/comment_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/syedsaim26/blog-platform/internal/domain/errors"
	"github.com/syedsaim26/blog-platform/internal/domain/models"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}
func (m *MockCommentRepository) FindByBlogID(ctx context.Context, blogID uuid.UUID) ([]models.Comment, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func TestCommentService_Create_Success(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	svc := NewCommentService(commentRepo, blogRepo, zap.NewNop())

	author := uuid.New()
	blog := &models.Blog{ID: uuid.New()}
	blogRepo.On("FindByID", mock.Anything, blog.ID).Return(blog, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).Return(nil)

	comment, err := svc.Create(context.Background(), author, models.CreateCommentRequest{
		Content: "Nice post",
		BlogID:  blog.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, author, comment.AuthorID)
	assert.Equal(t, blog.ID, comment.BlogID)
}

func TestCommentService_Create_MissingBlog(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	svc := NewCommentService(commentRepo, blogRepo, zap.NewNop())

	blogID := uuid.New()
	blogRepo.On("FindByID", mock.Anything, blogID).Return(nil, domainErrors.ErrBlogNotFound)

	_, err := svc.Create(context.Background(), uuid.New(), models.CreateCommentRequest{
		Content: "Orphan comment",
		BlogID:  blogID,
	})
	assert.ErrorIs(t, err, domainErrors.ErrBlogNotFound)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentService_Create_EmptyContent(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	svc := NewCommentService(commentRepo, blogRepo, zap.NewNop())

	_, err := svc.Create(context.Background(), uuid.New(), models.CreateCommentRequest{
		Content: "",
		BlogID:  uuid.New(),
	})
	assert.True(t, domainErrors.IsBadRequest(err))
	blogRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCommentService_ListByBlog(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	svc := NewCommentService(commentRepo, blogRepo, zap.NewNop())

	blog := &models.Blog{ID: uuid.New()}
	stored := []models.Comment{
		{ID: uuid.New(), Content: "first", BlogID: blog.ID},
		{ID: uuid.New(), Content: "second", BlogID: blog.ID},
	}
	blogRepo.On("FindByID", mock.Anything, blog.ID).Return(blog, nil)
	commentRepo.On("FindByBlogID", mock.Anything, blog.ID).Return(stored, nil)

	comments, err := svc.ListByBlog(context.Background(), blog.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, comments)
}

func TestCommentService_ListByBlog_MissingBlog(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	svc := NewCommentService(commentRepo, blogRepo, zap.NewNop())

	blogID := uuid.New()
	blogRepo.On("FindByID", mock.Anything, blogID).Return(nil, domainErrors.ErrBlogNotFound)

	_, err := svc.ListByBlog(context.Background(), blogID)
	assert.ErrorIs(t, err, domainErrors.ErrBlogNotFound)
}
