package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/dealer-api/internal/config"
	"github.com/kingrain94/dealer-api/internal/utils"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

const rateLimitWindow = time.Minute

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit limits requests per tenant; it must run after JWTAuth
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := utils.GetPrincipalFromContext(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant required for rate limiting"})
			c.Abort()
			return
		}

		key := fmt.Sprintf("rate_limit:tenant:%d", principal.TenantID)
		m.enforce(c, key, m.tenantLimit(), "Rate limit exceeded")
	}
}

// GlobalRateLimit limits requests per client IP
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		m.enforce(c, key, limit, "Global rate limit exceeded")
	}
}

// enforce is a fixed one-minute window counter. Redis failures let the request through.
func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int, message string) {
	current, err := m.increment(c.Request.Context(), key)
	if err != nil {
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	reset := time.Now().Add(rateLimitWindow).Unix()
	remaining := limit - current
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

	if current > limit {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": message,
			"limit": limit,
			"reset": reset,
		})
		return
	}

	c.Next()
}

// increment counts a hit. EXPIRE NX runs on every hit so a key always regains its TTL,
// and only the hit that opens the window sets it.
func (m *RateLimitMiddleware) increment(ctx context.Context, key string) (int, error) {
	var incr *redis.IntCmd
	_, err := m.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, rateLimitWindow)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(incr.Val()), nil
}

func (m *RateLimitMiddleware) tenantLimit() int {
	if m.config.DefaultRateLimit > 0 {
		return m.config.DefaultRateLimit
	}
	return 1000
}
