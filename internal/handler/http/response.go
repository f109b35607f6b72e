// File: internal/handler/http/response.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/syedsaim26/blog-platform/internal/domain/errors"
)

// ResponseError is the error envelope returned by every failing endpoint.
type ResponseError struct {
	Error string `json:"error"`
}

// RespondWithError sends an error envelope with the given status code.
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ResponseError{Error: message})
}

// RespondWithData sends a success response carrying the payload as-is.
func RespondWithData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// RespondWithDomainError maps a domain error onto the HTTP status it
// deserves. Unclassified errors are reported as a generic 500 so internal
// details never leak to the client.
func RespondWithDomainError(c *gin.Context, err error) {
	switch {
	case domainErrors.IsBadRequest(err):
		RespondWithError(c, http.StatusBadRequest, err.Error())
	case domainErrors.IsUnauthorized(err):
		RespondWithError(c, http.StatusUnauthorized, err.Error())
	case domainErrors.IsForbidden(err):
		RespondWithError(c, http.StatusForbidden, err.Error())
	case domainErrors.IsNotFound(err):
		RespondWithError(c, http.StatusNotFound, err.Error())
	case domainErrors.IsConflict(err):
		RespondWithError(c, http.StatusConflict, err.Error())
	default:
		RespondWithError(c, http.StatusInternalServerError, "internal server error")
	}
}
