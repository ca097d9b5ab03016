package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/metrics"
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.TokenResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	Me(ctx context.Context, principal *domain.Principal) (*dto.AccountResponse, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
}

func NewAuthHandler(base *BaseHandler, service AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Register godoc
// @Summary Register an account
// @Description Create an account, and its tenant when the tenant name is new. The creator of a tenant becomes its admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Registration"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, err := h.service.Register(h.RequestCtx(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	metrics.RegisterCounter.Inc()
	c.JSON(http.StatusOK, token)
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, err := h.service.Login(h.RequestCtx(c), req)
	if err != nil {
		metrics.RecordAuthError("login_failed")
		h.writeError(c, err)
		return
	}

	metrics.LoginCounter.Inc()
	c.JSON(http.StatusOK, token)
}

// Me godoc
// @Summary Current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} dto.Error
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	account, err := h.service.Me(h.RequestCtx(c), principal)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}
