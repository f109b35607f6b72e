// File: internal/handler/http/auth_handler.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/syedsaim26/blog-platform/internal/config"
	domainErrors "github.com/syedsaim26/blog-platform/internal/domain/errors"
	"github.com/syedsaim26/blog-platform/internal/domain/models"
	"github.com/syedsaim26/blog-platform/internal/service"
	"github.com/syedsaim26/blog-platform/internal/utils/metrics"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// AuthHandler handles registration, login, logout, and token refresh. The
// token pair travels in httpOnly cookies; response bodies only ever carry
// the sanitized user projection.
type AuthHandler struct {
	logger       *zap.Logger
	authService  *service.AuthService
	cookieMaxAge int
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(logger *zap.Logger, authService *service.AuthService, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:       logger.Named("auth_handler"),
		authService:  authService,
		cookieMaxAge: int(jwtCfg.CookieMaxAge.Seconds()),
	}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, pair, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		metrics.RegistrationAttemptsTotal.WithLabelValues("failure").Inc()
		RespondWithDomainError(c, err)
		return
	}
	metrics.RegistrationAttemptsTotal.WithLabelValues("success").Inc()

	h.setAuthCookies(c, pair)
	resp := user.ToResponse()
	RespondWithData(c, http.StatusCreated, models.AuthResponse{User: &resp, Auth: true})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, pair, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		RespondWithDomainError(c, err)
		return
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	h.setAuthCookies(c, pair)
	resp := user.ToResponse()
	RespondWithData(c, http.StatusOK, models.AuthResponse{User: &resp, Auth: true})
}

// Logout handles POST /logout. The refresh token is removed from the ledger
// and both cookies are cleared. Logout succeeds even if the cookie is
// missing or the ledger entry is already gone.
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(refreshTokenCookie)
	if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
		RespondWithDomainError(c, err)
		return
	}

	h.clearAuthCookies(c)
	RespondWithData(c, http.StatusOK, models.AuthResponse{User: nil, Auth: false})
}

// Refresh handles GET /refresh. A valid, ledger-matching refresh token is
// rotated into a fresh pair; anything else is a 401.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || refreshToken == "" {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		RespondWithDomainError(c, domainErrors.ErrUnauthorized)
		return
	}

	user, pair, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		RespondWithDomainError(c, err)
		return
	}
	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()

	h.setAuthCookies(c, pair)
	resp := user.ToResponse()
	RespondWithData(c, http.StatusOK, models.AuthResponse{User: &resp, Auth: true})
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, pair models.TokenPair) {
	c.SetCookie(accessTokenCookie, pair.AccessToken, h.cookieMaxAge, "/", "", false, true)
	c.SetCookie(refreshTokenCookie, pair.RefreshToken, h.cookieMaxAge, "/", "", false, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie(accessTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", false, true)
}
