// File: internal/handler/http/router.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/syedsaim26/blog-platform/internal/config"
	"github.com/syedsaim26/blog-platform/internal/handler/http/middleware"
	"github.com/syedsaim26/blog-platform/internal/service"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Logger         *zap.Logger
	Config         *config.Config
	TokenService   *service.TokenService
	AuthHandler    *AuthHandler
	BlogHandler    *BlogHandler
	CommentHandler *CommentHandler
}

// SetupRouter wires middleware and routes into a gin engine.
func SetupRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.LoggingMiddleware(deps.Logger))
	router.Use(middleware.CorsMiddleware(deps.Config.Server.AllowedOrigins))
	if deps.Config.Metrics.Enabled {
		router.Use(middleware.MetricsMiddleware())
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Config.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Session endpoints. Refresh authenticates via the refresh cookie
	// itself, so it stays outside the access-token middleware.
	router.POST("/register", deps.AuthHandler.Register)
	router.POST("/login", deps.AuthHandler.Login)
	router.GET("/refresh", deps.AuthHandler.Refresh)

	authorized := router.Group("/")
	authorized.Use(middleware.AuthMiddleware(deps.TokenService))
	{
		authorized.POST("/logout", deps.AuthHandler.Logout)

		authorized.POST("/blog", deps.BlogHandler.Create)
		authorized.GET("/blog/all", deps.BlogHandler.List)
		authorized.GET("/blog/:id", deps.BlogHandler.GetByID)
		authorized.PUT("/blog", deps.BlogHandler.Update)
		authorized.DELETE("/blog/:id", deps.BlogHandler.Delete)

		authorized.POST("/comment", deps.CommentHandler.Create)
		authorized.GET("/comment", deps.CommentHandler.ListByBlog)
	}

	return router
}
