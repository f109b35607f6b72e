// File: internal/handler/http/blog_handler.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedsaim26/blog-platform/internal/domain/models"
	"github.com/syedsaim26/blog-platform/internal/handler/http/middleware"
	"github.com/syedsaim26/blog-platform/internal/service"
)

// BlogHandler handles blog CRUD HTTP requests. All routes require an
// authenticated user.
type BlogHandler struct {
	logger      *zap.Logger
	blogService *service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(logger *zap.Logger, blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		logger:      logger.Named("blog_handler"),
		blogService: blogService,
	}
}

// Create handles POST /blog.
func (h *BlogHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondWithError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	blog, err := h.blogService.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	RespondWithData(c, http.StatusCreated, blog.ToResponse())
}

// GetByID handles GET /blog/:id.
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	blog, err := h.blogService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	RespondWithData(c, http.StatusOK, blog.ToResponse())
}

// List handles GET /blog/all.
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.blogService.List(c.Request.Context())
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}

	responses := make([]models.BlogResponse, 0, len(blogs))
	for i := range blogs {
		responses = append(responses, blogs[i].ToResponse())
	}
	RespondWithData(c, http.StatusOK, responses)
}

// Update handles PUT /blog.
func (h *BlogHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondWithError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	blog, err := h.blogService.Update(c.Request.Context(), userID, req)
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	RespondWithData(c, http.StatusOK, blog.ToResponse())
}

// Delete handles DELETE /blog/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondWithError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), userID, id); err != nil {
		RespondWithDomainError(c, err)
		return
	}
	RespondWithData(c, http.StatusOK, gin.H{"message": "blog deleted"})
}

// currentUserID extracts the authenticated user's ID set by the auth
// middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
