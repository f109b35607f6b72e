// File: internal/handler/http/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/syedsaim26/blog-platform/internal/service"
)

const (
	// ContextUserIDKey is the gin context key holding the authenticated
	// user's ID.
	ContextUserIDKey = "userID"
	// ContextUsernameKey is the gin context key holding the authenticated
	// user's username.
	ContextUsernameKey = "username"
	// ContextClaimsKey is the gin context key holding the full token claims.
	ContextClaimsKey = "claims"

	// AccessTokenCookie is the cookie carrying the access token.
	AccessTokenCookie = "accessToken"
)

// AuthMiddleware authenticates the request from the accessToken cookie,
// falling back to an Authorization bearer header for non-browser clients.
func AuthMiddleware(tokenService *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AccessTokenCookie)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := tokenService.ParseAccessToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}
