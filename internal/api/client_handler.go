package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
)

//go:generate mockery --name ClientService --output ../mocks
type ClientService interface {
	Create(ctx context.Context, principal *domain.Principal, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	Get(ctx context.Context, principal *domain.Principal, id uint) (*dto.ClientResponse, error)
	List(ctx context.Context, principal *domain.Principal, query dto.ListClientsQuery) ([]dto.ClientResponse, error)
	Update(ctx context.Context, principal *domain.Principal, id uint, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, principal *domain.Principal, id uint) error
}

type ClientHandler struct {
	*BaseHandler
	service ClientService
}

func NewClientHandler(base *BaseHandler, service ClientService) *ClientHandler {
	return &ClientHandler{BaseHandler: base, service: service}
}

// CreateClient godoc
// @Summary Register a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateClientRequest true "Client"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	client, err := h.service.Create(h.RequestCtx(c), principal, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ListClients godoc
// @Summary List the tenant's clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param status query string false "interested, negotiating, closed or lost"
// @Param car_id query int false "Car of interest"
// @Param created_after query string false "RFC3339 or YYYY-MM-DD"
// @Param created_before query string false "RFC3339 or YYYY-MM-DD, a bare date covers the whole day"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size, at most 100" default(100)
// @Success 200 {array} dto.ClientResponse
// @Failure 400 {object} dto.Error
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var query dto.ListClientsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	clients, err := h.service.List(h.RequestCtx(c), principal, query)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient godoc
// @Summary Get a client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} dto.Error
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	client, err := h.service.Get(h.RequestCtx(c), principal, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient godoc
// @Summary Update a client
// @Description Only the fields present in the body are changed. null clears a nullable field.
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Param body body dto.UpdateClientRequest true "Fields to change"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	client, err := h.service.Update(h.RequestCtx(c), principal, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient godoc
// @Summary Delete a client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.Error
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), principal, id); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Client deleted successfully"})
}
