package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/auth"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/metrics"
	"github.com/kingrain94/dealer-api/internal/utils"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

const unauthorizedMessage = "Could not validate credentials"

//go:generate mockery --name PrincipalResolver --output ../mocks
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Principal, error)
}

type AuthMiddleware struct {
	resolver PrincipalResolver
	logger   *logger.Logger
}

func NewAuthMiddleware(resolver PrincipalResolver, logger *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

// JWTAuth resolves the bearer token into a principal and stores it both in the gin keys
// and in the request context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			metrics.RecordAuthError("missing_token")
			abortUnauthorized(c)
			return
		}

		principal, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				metrics.RecordAuthError("invalid_token")
				abortUnauthorized(c)
				return
			}
			m.logger.Error("Failed to resolve principal", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error{Error: "Internal server error"})
			return
		}

		c.Set(string(utils.PrincipalKey), principal)
		c.Request = c.Request.WithContext(utils.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// RequireAdmin must run after JWTAuth
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := utils.GetPrincipalFromContext(c.Request.Context())
		if err != nil {
			abortUnauthorized(c)
			return
		}

		if !principal.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error{Error: "Admin privileges required"})
			return
		}

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: unauthorizedMessage})
}
