// File: internal/handler/http/comment_handler.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedsaim26/blog-platform/internal/domain/models"
	"github.com/syedsaim26/blog-platform/internal/service"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	logger         *zap.Logger
	commentService *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(logger *zap.Logger, commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		logger:         logger.Named("comment_handler"),
		commentService: commentService,
	}
}

// Create handles POST /comment.
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondWithError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	RespondWithData(c, http.StatusCreated, comment)
}

// ListByBlog handles GET /comment?blog=<id>.
func (h *CommentHandler) ListByBlog(c *gin.Context) {
	blogID, err := uuid.Parse(c.Query("blog"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	comments, err := h.commentService.ListByBlog(c.Request.Context(), blogID)
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	RespondWithData(c, http.StatusOK, comments)
}
