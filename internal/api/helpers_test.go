package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/utils"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

var (
	adminPrincipal  = &domain.Principal{AccountID: 1, TenantID: 10, Email: "owner@acme.com", IsAdmin: true}
	memberPrincipal = &domain.Principal{AccountID: 2, TenantID: 10, Email: "seller@acme.com"}
)

func newTestBase() *BaseHandler {
	return NewBaseHandler(logger.NewNop())
}

// asPrincipal stands in for the auth middleware
func asPrincipal(principal *domain.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(utils.PrincipalKey), principal)
		c.Request = c.Request.WithContext(utils.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
