package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/mocks"
	"github.com/kingrain94/dealer-api/internal/repository"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

type CarServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockCar         *mocks.CarRepository
	mockDocument    *mocks.DocumentRepository
	mockCleanup     *mocks.CleanupQueue
	mockBroadcaster *mocks.InventoryBroadcaster
	service         *CarService
	principal       *domain.Principal
}

func (s *CarServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockCar = new(mocks.CarRepository)
	s.mockDocument = new(mocks.DocumentRepository)
	s.mockCleanup = new(mocks.CleanupQueue)
	s.mockBroadcaster = new(mocks.InventoryBroadcaster)

	s.mockRepo.On("Car").Return(s.mockCar)
	s.mockRepo.On("Document").Return(s.mockDocument)
	s.mockRepo.On("Transaction", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(repository.Repository) error) error {
			return fn(s.mockRepo)
		})

	s.service = NewCarService(s.mockRepo, s.mockCleanup, logger.NewNop())
	s.service.SetInventoryBroadcaster(s.mockBroadcaster)
	s.principal = &domain.Principal{AccountID: 1, TenantID: 10}
}

func TestCarService(t *testing.T) {
	suite.Run(t, new(CarServiceTestSuite))
}

func (s *CarServiceTestSuite) TestCreate_StampsTenantAndDefaults() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateCarRequest{Title: "Civic EXL", Brand: "Honda", Model: "Civic", Year: 2020}

	s.mockCar.On("Create", ctx, mock.MatchedBy(func(c *domain.Car) bool {
		return c.TenantID == 10 && c.Status == domain.CarStatusAvailable
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Car).ID = 42
	}).Return(nil)
	s.mockBroadcaster.On("BroadcastCarEvent", mock.MatchedBy(func(e *dto.CarEvent) bool {
		return e.Type == dto.CarCreated && e.TenantID == 10 && e.CarID == 42 && e.Car != nil
	})).Return()

	// Act
	resp, err := s.service.Create(ctx, s.principal, req)

	// Assert
	s.NoError(err)
	s.Equal(uint(42), resp.ID)
	s.Equal(uint(10), resp.TenantID)
	s.Equal("available", resp.Status)
	s.mockCar.AssertExpectations(s.T())
	s.mockBroadcaster.AssertExpectations(s.T())
}

func (s *CarServiceTestSuite) TestGet_OtherTenantIsNotFound() {
	ctx := context.Background()

	s.mockCar.On("GetByID", ctx, uint(10), uint(99)).Return(nil, domain.ErrNotFound)

	resp, err := s.service.Get(ctx, s.principal, 99)

	s.Nil(resp)
	s.ErrorIs(err, domain.ErrNotFound)
	s.EqualError(err, "Car not found")
}

func (s *CarServiceTestSuite) TestList_ClampsLimit() {
	ctx := context.Background()
	query := dto.ListCarsQuery{Pagination: dto.Pagination{Skip: 5, Limit: 500}, Status: "sold"}

	s.mockCar.On("List", ctx, domain.CarFilter{TenantID: 10, Status: "sold", Offset: 5, Limit: dto.MaxPageLimit}).
		Return([]domain.Car{{ID: 1, TenantID: 10, Status: domain.CarStatusSold}}, nil)

	resp, err := s.service.List(ctx, s.principal, query)

	s.NoError(err)
	s.Len(resp, 1)
	s.mockCar.AssertExpectations(s.T())
}

func (s *CarServiceTestSuite) TestUpdate_AppliesPresentFields() {
	// Arrange
	ctx := context.Background()
	existing := &domain.Car{ID: 3, TenantID: 10, Title: "Old", Brand: "Fiat", Model: "Uno", Year: 2010, Status: domain.CarStatusAvailable}
	status := "sold"
	req := dto.UpdateCarRequest{Status: &status}

	s.mockCar.On("GetByID", ctx, uint(10), uint(3)).Return(existing, nil)
	s.mockCar.On("Update", ctx, mock.MatchedBy(func(c *domain.Car) bool {
		return c.Status == domain.CarStatusSold && c.Title == "Old"
	})).Return(nil)
	s.mockBroadcaster.On("BroadcastCarEvent", mock.MatchedBy(func(e *dto.CarEvent) bool {
		return e.Type == dto.CarUpdated && e.CarID == 3
	})).Return()

	// Act
	resp, err := s.service.Update(ctx, s.principal, 3, req)

	// Assert
	s.NoError(err)
	s.Equal("sold", resp.Status)
	s.Equal("Old", resp.Title)
	s.mockCar.AssertExpectations(s.T())
}

func (s *CarServiceTestSuite) TestDelete_RemovesDocumentsAndQueuesFiles() {
	// Arrange
	ctx := context.Background()
	key := "tenants/10/documents/a.pdf"
	carID := uint(3)

	s.mockCar.On("GetByID", ctx, uint(10), carID).Return(&domain.Car{ID: carID, TenantID: 10}, nil)
	s.mockDocument.On("List", ctx, mock.MatchedBy(func(f domain.DocumentFilter) bool {
		return f.TenantID == 10 && f.CarID != nil && *f.CarID == carID
	})).Return([]domain.Document{{ID: 1, CarID: carID, FileURL: &key}, {ID: 2, CarID: carID}}, nil)
	s.mockDocument.On("Delete", ctx, uint(10), uint(1)).Return(nil)
	s.mockDocument.On("Delete", ctx, uint(10), uint(2)).Return(nil)
	s.mockCar.On("Delete", ctx, uint(10), carID).Return(nil)
	s.mockCleanup.On("SendFileCleanupMessage", ctx, uint(10), []string{key}).Return(nil)
	s.mockBroadcaster.On("BroadcastCarEvent", mock.MatchedBy(func(e *dto.CarEvent) bool {
		return e.Type == dto.CarDeleted && e.CarID == carID && e.Car == nil
	})).Return()

	// Act
	err := s.service.Delete(ctx, s.principal, carID)

	// Assert
	s.NoError(err)
	s.mockDocument.AssertExpectations(s.T())
	s.mockCar.AssertExpectations(s.T())
	s.mockCleanup.AssertExpectations(s.T())
	s.mockBroadcaster.AssertExpectations(s.T())
}

func (s *CarServiceTestSuite) TestDelete_CleanupFailureDoesNotFail() {
	ctx := context.Background()
	key := "tenants/10/documents/a.pdf"

	s.mockCar.On("GetByID", ctx, uint(10), uint(3)).Return(&domain.Car{ID: 3, TenantID: 10}, nil)
	s.mockDocument.On("List", ctx, mock.Anything).Return([]domain.Document{{ID: 1, FileURL: &key}}, nil)
	s.mockDocument.On("Delete", ctx, uint(10), uint(1)).Return(nil)
	s.mockCar.On("Delete", ctx, uint(10), uint(3)).Return(nil)
	s.mockCleanup.On("SendFileCleanupMessage", ctx, uint(10), []string{key}).Return(errors.New("queue down"))
	s.mockBroadcaster.On("BroadcastCarEvent", mock.Anything).Return()

	err := s.service.Delete(ctx, s.principal, 3)

	s.NoError(err)
}

func (s *CarServiceTestSuite) TestDelete_OtherTenantIsNotFound() {
	ctx := context.Background()

	s.mockCar.On("GetByID", ctx, uint(10), uint(3)).Return(nil, domain.ErrNotFound)

	err := s.service.Delete(ctx, s.principal, 3)

	var nf *NotFoundError
	s.ErrorAs(err, &nf)
	s.Equal("Car", nf.Resource)
	s.mockCar.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
	s.mockBroadcaster.AssertNotCalled(s.T(), "BroadcastCarEvent", mock.Anything)
}

func (s *CarServiceTestSuite) TestCreate_WithoutBroadcaster() {
	ctx := context.Background()
	service := NewCarService(s.mockRepo, s.mockCleanup, logger.NewNop())

	s.mockCar.On("Create", ctx, mock.Anything).Return(nil)

	_, err := service.Create(ctx, s.principal, dto.CreateCarRequest{Title: "T", Brand: "B", Model: "M", Year: 2001})

	s.NoError(err)
}
