package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/dealer-api/internal/auth"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/mocks"
	"github.com/kingrain94/dealer-api/internal/utils"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	mockResolver *mocks.PrincipalResolver
	router       *gin.Engine
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockResolver = new(mocks.PrincipalResolver)
	m := NewAuthMiddleware(s.mockResolver, logger.NewNop())

	s.router = gin.New()
	s.router.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		principal, err := utils.GetPrincipalFromContext(c.Request.Context())
		if err != nil {
			c.Status(http.StatusTeapot)
			return
		}
		fromKeys, _ := c.Get(string(utils.PrincipalKey))
		assert.Same(s.T(), principal, fromKeys)
		c.JSON(http.StatusOK, gin.H{"tenant_id": principal.TenantID})
	})
	s.router.PUT("/tenant", m.JWTAuth(), m.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) do(method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestMissingOrMalformedHeader() {
	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic dXNlcjpwYXNz", "token-without-scheme"} {
		w := s.do(http.MethodGet, "/me", header)

		s.Equal(http.StatusUnauthorized, w.Code, header)
		s.Equal("Bearer", w.Header().Get("WWW-Authenticate"))
		s.JSONEq(`{"error":"Could not validate credentials"}`, w.Body.String())
	}
	s.mockResolver.AssertNotCalled(s.T(), "Resolve", mock.Anything, mock.Anything)
}

func (s *AuthMiddlewareTestSuite) TestValidToken() {
	principal := &domain.Principal{AccountID: 1, TenantID: 7, Email: "owner@acme.com"}
	s.mockResolver.On("Resolve", mock.Anything, "good-token").Return(principal, nil)

	w := s.do(http.MethodGet, "/me", "bearer good-token")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"tenant_id":7}`, w.Body.String())
}

func (s *AuthMiddlewareTestSuite) TestRejectedToken() {
	s.mockResolver.On("Resolve", mock.Anything, "bad-token").Return(nil, auth.ErrUnauthorized)

	w := s.do(http.MethodGet, "/me", "Bearer bad-token")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Bearer", w.Header().Get("WWW-Authenticate"))
}

func (s *AuthMiddlewareTestSuite) TestResolverFailure() {
	s.mockResolver.On("Resolve", mock.Anything, "some-token").Return(nil, errors.New("db unreachable"))

	w := s.do(http.MethodGet, "/me", "Bearer some-token")

	s.Equal(http.StatusInternalServerError, w.Code)
	s.JSONEq(`{"error":"Internal server error"}`, w.Body.String())
}

func (s *AuthMiddlewareTestSuite) TestRequireAdmin() {
	s.mockResolver.On("Resolve", mock.Anything, "admin").Return(&domain.Principal{AccountID: 1, TenantID: 7, IsAdmin: true}, nil)
	s.mockResolver.On("Resolve", mock.Anything, "member").Return(&domain.Principal{AccountID: 2, TenantID: 7}, nil)

	w := s.do(http.MethodPut, "/tenant", "Bearer admin")
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodPut, "/tenant", "Bearer member")
	s.Equal(http.StatusForbidden, w.Code)
	s.JSONEq(`{"error":"Admin privileges required"}`, w.Body.String())
}
