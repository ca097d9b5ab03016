package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/repository"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

//go:generate mockery --name InventoryBroadcaster --output ../mocks
type InventoryBroadcaster interface {
	BroadcastCarEvent(event *dto.CarEvent)
}

type CarService struct {
	repo        repository.Repository
	cleanup     CleanupQueue
	broadcaster InventoryBroadcaster
	logger      *logger.Logger
}

func NewCarService(repo repository.Repository, cleanup CleanupQueue, logger *logger.Logger) *CarService {
	return &CarService{
		repo:    repo,
		cleanup: cleanup,
		logger:  logger,
	}
}

// SetInventoryBroadcaster sets the inventory stream broadcaster
func (s *CarService) SetInventoryBroadcaster(broadcaster InventoryBroadcaster) {
	s.broadcaster = broadcaster
}

func (s *CarService) Create(ctx context.Context, principal *domain.Principal, req dto.CreateCarRequest) (*dto.CarResponse, error) {
	car := req.ToCar(principal.TenantID)
	if err := s.repo.Car().Create(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	resp := dto.FromCar(car)
	s.broadcast(dto.CarCreated, car.TenantID, car.ID, resp)
	return resp, nil
}

func (s *CarService) Get(ctx context.Context, principal *domain.Principal, id uint) (*dto.CarResponse, error) {
	car, err := s.repo.Car().GetByID(ctx, principal.TenantID, id)
	if err != nil {
		return nil, notFound(err, "Car")
	}
	return dto.FromCar(car), nil
}

func (s *CarService) List(ctx context.Context, principal *domain.Principal, query dto.ListCarsQuery) ([]dto.CarResponse, error) {
	offset, limit := query.Bounds()
	cars, err := s.repo.Car().List(ctx, domain.CarFilter{
		TenantID: principal.TenantID,
		Status:   query.Status,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return dto.FromCars(cars), nil
}

func (s *CarService) Update(ctx context.Context, principal *domain.Principal, id uint, req dto.UpdateCarRequest) (*dto.CarResponse, error) {
	car, err := s.repo.Car().GetByID(ctx, principal.TenantID, id)
	if err != nil {
		return nil, notFound(err, "Car")
	}

	req.ApplyTo(car)
	if err := s.repo.Car().Update(ctx, car); err != nil {
		return nil, notFound(err, "Car")
	}

	resp := dto.FromCar(car)
	s.broadcast(dto.CarUpdated, car.TenantID, car.ID, resp)
	return resp, nil
}

// Delete removes the car together with its documents and queues their files for cleanup
func (s *CarService) Delete(ctx context.Context, principal *domain.Principal, id uint) error {
	var fileKeys []string

	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		if _, err := tx.Car().GetByID(ctx, principal.TenantID, id); err != nil {
			return notFound(err, "Car")
		}

		documents, err := tx.Document().List(ctx, domain.DocumentFilter{TenantID: principal.TenantID, CarID: &id})
		if err != nil {
			return fmt.Errorf("failed to list car documents: %w", err)
		}
		for _, document := range documents {
			if document.FileURL != nil && *document.FileURL != "" {
				fileKeys = append(fileKeys, *document.FileURL)
			}
			if err := tx.Document().Delete(ctx, principal.TenantID, document.ID); err != nil {
				return fmt.Errorf("failed to delete document %d: %w", document.ID, err)
			}
		}

		if err := tx.Car().Delete(ctx, principal.TenantID, id); err != nil {
			return notFound(err, "Car")
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(fileKeys) > 0 {
		if err := s.cleanup.SendFileCleanupMessage(ctx, principal.TenantID, fileKeys); err != nil {
			s.logger.Error("failed to queue file cleanup", err, zap.Uint("car_id", id))
		}
	}

	s.broadcast(dto.CarDeleted, principal.TenantID, id, nil)
	return nil
}

func (s *CarService) broadcast(eventType dto.CarEventType, tenantID, carID uint, car *dto.CarResponse) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastCarEvent(&dto.CarEvent{
		Type:     eventType,
		TenantID: tenantID,
		CarID:    carID,
		Car:      car,
		At:       time.Now().UTC(),
	})
}
