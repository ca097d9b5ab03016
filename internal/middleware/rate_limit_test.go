package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/dealer-api/internal/config"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/utils"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

func newRateLimitRouter(t *testing.T, limit int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	m := NewRateLimitMiddleware(client, &config.Config{DefaultRateLimit: limit}, logger.NewNop())

	router := gin.New()
	withTenant := func(c *gin.Context) {
		tenantID := uint(1)
		if c.GetHeader("X-Tenant") == "2" {
			tenantID = 2
		}
		principal := &domain.Principal{AccountID: 1, TenantID: tenantID}
		c.Request = c.Request.WithContext(utils.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	router.GET("/cars", withTenant, m.TenantRateLimit(), ok)
	router.GET("/open", m.GlobalRateLimit(limit), ok)
	router.GET("/anonymous", m.TenantRateLimit(), ok)
	return router, mr
}

func get(router *gin.Engine, path, tenant string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if tenant != "" {
		req.Header.Set("X-Tenant", tenant)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTenantRateLimit_BlocksAfterLimit(t *testing.T) {
	router, mr := newRateLimitRouter(t, 2)

	first := get(router, "/cars", "1")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, first.Header().Get("X-RateLimit-Reset"))

	assert.Equal(t, http.StatusOK, get(router, "/cars", "1").Code)

	blocked := get(router, "/cars", "1")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, blocked.Body.String(), "Rate limit exceeded")

	// other tenants have their own window
	assert.Equal(t, http.StatusOK, get(router, "/cars", "2").Code)

	assert.True(t, mr.Exists("rate_limit:tenant:1"))
	assert.Equal(t, rateLimitWindow, mr.TTL("rate_limit:tenant:1"))
}

func TestTenantRateLimit_WindowResets(t *testing.T) {
	router, mr := newRateLimitRouter(t, 1)

	require.Equal(t, http.StatusOK, get(router, "/cars", "1").Code)
	require.Equal(t, http.StatusTooManyRequests, get(router, "/cars", "1").Code)

	mr.FastForward(rateLimitWindow)

	assert.Equal(t, http.StatusOK, get(router, "/cars", "1").Code)
}

func TestTenantRateLimit_RestoresMissingTTL(t *testing.T) {
	router, mr := newRateLimitRouter(t, 5)
	// a counter left without a TTL would otherwise block the tenant forever
	require.NoError(t, mr.Set("rate_limit:tenant:1", "9"))

	require.Equal(t, http.StatusTooManyRequests, get(router, "/cars", "1").Code)
	assert.Equal(t, rateLimitWindow, mr.TTL("rate_limit:tenant:1"))

	mr.FastForward(rateLimitWindow)
	assert.Equal(t, http.StatusOK, get(router, "/cars", "1").Code)
}

func TestTenantRateLimit_WindowNotExtended(t *testing.T) {
	router, mr := newRateLimitRouter(t, 5)

	require.Equal(t, http.StatusOK, get(router, "/cars", "1").Code)
	mr.FastForward(20 * time.Second)
	require.Equal(t, http.StatusOK, get(router, "/cars", "1").Code)

	assert.Equal(t, rateLimitWindow-20*time.Second, mr.TTL("rate_limit:tenant:1"))
}

func TestTenantRateLimit_RequiresPrincipal(t *testing.T) {
	router, _ := newRateLimitRouter(t, 5)

	w := get(router, "/anonymous", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGlobalRateLimit(t *testing.T) {
	router, _ := newRateLimitRouter(t, 1)

	assert.Equal(t, http.StatusOK, get(router, "/open", "").Code)
	w := get(router, "/open", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Global rate limit exceeded")
}

func TestRateLimit_FailsOpenWithoutRedis(t *testing.T) {
	router, mr := newRateLimitRouter(t, 1)
	mr.Close()

	assert.Equal(t, http.StatusOK, get(router, "/open", "").Code)
	assert.Equal(t, http.StatusOK, get(router, "/open", "").Code)
}
