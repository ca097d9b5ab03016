package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/service"
	"github.com/kingrain94/dealer-api/internal/utils"
)

const (
	unauthorizedMessage       = "Could not validate credentials"
	invalidCredentialsMessage = "Incorrect email or password"
	internalErrorMessage      = "Internal server error"
)

// writeError maps service errors onto status codes. Anything unrecognised is logged and
// reported as a bare 500.
func (h *BaseHandler) writeError(c *gin.Context, err error) {
	var notFound *service.NotFoundError

	switch {
	case errors.Is(err, service.ErrDuplicateAccount):
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Email already registered"})
	case errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidTenantName),
		errors.Is(err, service.ErrInvalidFile),
		errors.Is(err, service.ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		abortUnauthorized(c, invalidCredentialsMessage)
	case errors.Is(err, service.ErrUnauthorized):
		abortUnauthorized(c, unauthorizedMessage)
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Error{Error: "Admin privileges required"})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: notFound.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: "Not found"})
	default:
		h.logger.With(zap.String("request_id", utils.GetRequestIDFromContext(c.Request.Context()))).
			Error("Request failed", err, zap.String("method", c.Request.Method), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, dto.Error{Error: internalErrorMessage})
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: message})
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
}
