package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/utils"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

type BaseHandler struct {
	logger *logger.Logger
}

func NewBaseHandler(logger *logger.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// principal returns the caller set by the auth middleware, writing a 401 when there is none
func (h *BaseHandler) principal(c *gin.Context) (*domain.Principal, bool) {
	principal, err := utils.GetPrincipalFromContext(h.RequestCtx(c))
	if err != nil {
		abortUnauthorized(c, unauthorizedMessage)
		return nil, false
	}
	return principal, true
}

// pathID parses a numeric path parameter, writing a 400 when it is not one
func (h *BaseHandler) pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Error: "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
