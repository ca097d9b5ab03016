package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Get(ctx context.Context, principal *domain.Principal) (*dto.TenantResponse, error)
	Rename(ctx context.Context, principal *domain.Principal, req dto.UpdateTenantRequest) (*dto.TenantResponse, error)
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(base *BaseHandler, service TenantService) *TenantHandler {
	return &TenantHandler{BaseHandler: base, service: service}
}

// GetTenant godoc
// @Summary Get the caller's tenant
// @Tags tenant
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenant [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	tenant, err := h.service.Get(h.RequestCtx(c), principal)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// UpdateTenant godoc
// @Summary Rename the caller's tenant
// @Description Admin only. The slug is not changed.
// @Tags tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateTenantRequest true "New name"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router /tenant [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tenant, err := h.service.Rename(h.RequestCtx(c), principal, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}
