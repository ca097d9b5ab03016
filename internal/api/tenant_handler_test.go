package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/mocks"
	"github.com/kingrain94/dealer-api/internal/service"
)

type TenantHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.TenantService
	handler     *TenantHandler
}

func (s *TenantHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockService = new(mocks.TenantService)
	s.handler = NewTenantHandler(newTestBase(), s.mockService)

	s.router.GET("/tenant", asPrincipal(adminPrincipal), s.handler.GetTenant)
	s.router.PUT("/tenant", asPrincipal(adminPrincipal), s.handler.UpdateTenant)
	s.router.PUT("/member/tenant", asPrincipal(memberPrincipal), s.handler.UpdateTenant)
	s.router.GET("/anonymous/tenant", s.handler.GetTenant)
}

func TestTenantHandler(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}

func (s *TenantHandlerTestSuite) TestGetTenant_Success() {
	// Arrange
	now := time.Now()
	expected := &dto.TenantResponse{ID: 10, Slug: "acme-motors", Name: "Acme Motors", IsActive: true, CreatedAt: now, UpdatedAt: now}
	s.mockService.On("Get", mock.Anything, adminPrincipal).Return(expected, nil)

	// Act
	w := perform(s.router, http.MethodGet, "/tenant", nil)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.TenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(expected.ID, response.ID)
	s.Equal(expected.Slug, response.Slug)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestGetTenant_NoPrincipal() {
	w := perform(s.router, http.MethodGet, "/anonymous/tenant", nil)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Bearer", w.Header().Get("WWW-Authenticate"))
	s.mockService.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func (s *TenantHandlerTestSuite) TestUpdateTenant_Success() {
	req := dto.UpdateTenantRequest{Name: "Acme Motors Ltda"}
	s.mockService.On("Rename", mock.Anything, adminPrincipal, req).
		Return(&dto.TenantResponse{ID: 10, Slug: "acme-motors", Name: req.Name}, nil)

	w := perform(s.router, http.MethodPut, "/tenant", req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Acme Motors Ltda")
}

func (s *TenantHandlerTestSuite) TestUpdateTenant_MissingName() {
	w := perform(s.router, http.MethodPut, "/tenant", map[string]string{})

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Rename", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TenantHandlerTestSuite) TestUpdateTenant_Forbidden() {
	req := dto.UpdateTenantRequest{Name: "Hijacked"}
	s.mockService.On("Rename", mock.Anything, memberPrincipal, req).Return(nil, service.ErrForbidden)

	w := perform(s.router, http.MethodPut, "/member/tenant", req)

	s.Equal(http.StatusForbidden, w.Code)
	s.JSONEq(`{"error":"Admin privileges required"}`, w.Body.String())
}
