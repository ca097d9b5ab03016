package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
)

//go:generate mockery --name CarService --output ../mocks
type CarService interface {
	Create(ctx context.Context, principal *domain.Principal, req dto.CreateCarRequest) (*dto.CarResponse, error)
	Get(ctx context.Context, principal *domain.Principal, id uint) (*dto.CarResponse, error)
	List(ctx context.Context, principal *domain.Principal, query dto.ListCarsQuery) ([]dto.CarResponse, error)
	Update(ctx context.Context, principal *domain.Principal, id uint, req dto.UpdateCarRequest) (*dto.CarResponse, error)
	Delete(ctx context.Context, principal *domain.Principal, id uint) error
}

type CarHandler struct {
	*BaseHandler
	service CarService
}

func NewCarHandler(base *BaseHandler, service CarService) *CarHandler {
	return &CarHandler{BaseHandler: base, service: service}
}

// CreateCar godoc
// @Summary Add a car to the inventory
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateCarRequest true "Car"
// @Success 201 {object} dto.CarResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req dto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	car, err := h.service.Create(h.RequestCtx(c), principal, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, car)
}

// ListCars godoc
// @Summary List the tenant's cars
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param status query string false "available, sold or reserved"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size, at most 100" default(100)
// @Success 200 {array} dto.CarResponse
// @Failure 400 {object} dto.Error
// @Router /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var query dto.ListCarsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	cars, err := h.service.List(h.RequestCtx(c), principal, query)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cars)
}

// GetCar godoc
// @Summary Get a car
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path int true "Car ID"
// @Success 200 {object} dto.CarResponse
// @Failure 404 {object} dto.Error
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	car, err := h.service.Get(h.RequestCtx(c), principal, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, car)
}

// UpdateCar godoc
// @Summary Update a car
// @Description Only the fields present in the body are changed. null clears a nullable field.
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Car ID"
// @Param body body dto.UpdateCarRequest true "Fields to change"
// @Success 200 {object} dto.CarResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /cars/{id} [put]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	car, err := h.service.Update(h.RequestCtx(c), principal, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, car)
}

// DeleteCar godoc
// @Summary Delete a car
// @Description Also deletes the car's documents and queues their files for removal
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path int true "Car ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.Error
// @Router /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Car deleted successfully"})
}
