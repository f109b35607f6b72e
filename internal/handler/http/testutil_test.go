// File: internal/handler/http/testutil_test.go
package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/syedsaim26/blog-platform/internal/config"
	domainErrors "github.com/syedsaim26/blog-platform/internal/domain/errors"
	"github.com/syedsaim26/blog-platform/internal/domain/models"
	"github.com/syedsaim26/blog-platform/internal/service"
)

// --- In-memory repositories ---

type memUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: map[uuid.UUID]*models.User{}}
}

func (r *memUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domainErrors.ErrEmailExists
		}
		if u.Username == user.Username {
			return domainErrors.ErrUsernameExists
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepository) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domainErrors.ErrUserNotFound
}

func (r *memUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domainErrors.ErrUserNotFound
}

func (r *memUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type memRefreshTokenRepository struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]string
}

func newMemRefreshTokenRepository() *memRefreshTokenRepository {
	return &memRefreshTokenRepository{byUser: map[uuid.UUID]string{}}
}

func (r *memRefreshTokenRepository) Upsert(_ context.Context, userID uuid.UUID, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = tokenHash
	return nil
}

func (r *memRefreshTokenRepository) FindByUserAndHash(_ context.Context, userID uuid.UUID, tokenHash string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.byUser[userID]; ok && h == tokenHash {
		return &models.RefreshToken{UserID: userID, TokenHash: h}, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (r *memRefreshTokenRepository) DeleteByHash(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, h := range r.byUser {
		if h == tokenHash {
			delete(r.byUser, userID)
		}
	}
	return nil
}

type memBlogRepository struct {
	mu    sync.Mutex
	blogs map[uuid.UUID]*models.Blog
}

func newMemBlogRepository() *memBlogRepository {
	return &memBlogRepository{blogs: map[uuid.UUID]*models.Blog{}}
}

func (r *memBlogRepository) Create(_ context.Context, blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = blog.CreatedAt
	clone := *blog
	r.blogs[blog.ID] = &clone
	return nil
}

func (r *memBlogRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.blogs[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, domainErrors.ErrBlogNotFound
}

func (r *memBlogRepository) FindAll(_ context.Context) ([]models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]models.Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		all = append(all, *b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

func (r *memBlogRepository) Update(_ context.Context, blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blogs[blog.ID]; !ok {
		return domainErrors.ErrBlogNotFound
	}
	blog.UpdatedAt = time.Now()
	clone := *blog
	r.blogs[blog.ID] = &clone
	return nil
}

func (r *memBlogRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blogs[id]; !ok {
		return domainErrors.ErrBlogNotFound
	}
	delete(r.blogs, id)
	return nil
}

type memCommentRepository struct {
	mu       sync.Mutex
	comments []models.Comment
}

func newMemCommentRepository() *memCommentRepository {
	return &memCommentRepository{}
}

func (r *memCommentRepository) Create(_ context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.CreatedAt = time.Now()
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *memCommentRepository) FindByBlogID(_ context.Context, blogID uuid.UUID) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Comment{}
	for _, c := range r.comments {
		if c.BlogID == blogID {
			out = append(out, c)
		}
	}
	return out, nil
}

// --- Test server ---

type testEnv struct {
	router    *gin.Engine
	userRepo  *memUserRepository
	tokenRepo *memRefreshTokenRepository
	blogRepo  *memBlogRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			Issuer:          "blog-service",
			AccessTokenTTL:  30 * time.Minute,
			RefreshTokenTTL: time.Hour,
			CookieMaxAge:    24 * time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}

	log := zap.NewNop()
	tokenService, err := service.NewTokenService(cfg.JWT)
	require.NoError(t, err)

	userRepo := newMemUserRepository()
	tokenRepo := newMemRefreshTokenRepository()
	blogRepo := newMemBlogRepository()
	commentRepo := newMemCommentRepository()

	authService := service.NewAuthService(userRepo, tokenRepo, tokenService, log, cfg.Security.BcryptCost)
	blogService := service.NewBlogService(blogRepo, nil, log)
	commentService := service.NewCommentService(commentRepo, blogRepo, log)

	router := SetupRouter(RouterDeps{
		Logger:         log,
		Config:         cfg,
		TokenService:   tokenService,
		AuthHandler:    NewAuthHandler(log, authService, cfg.JWT),
		BlogHandler:    NewBlogHandler(log, blogService),
		CommentHandler: NewCommentHandler(log, commentService),
	})

	return &testEnv{router: router, userRepo: userRepo, tokenRepo: tokenRepo, blogRepo: blogRepo}
}

func (e *testEnv) do(t *testing.T, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
