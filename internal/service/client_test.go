package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/mocks"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockCar    *mocks.CarRepository
	mockClient *mocks.ClientRepository
	service    *ClientService
	principal  *domain.Principal
}

func (s *ClientServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockCar = new(mocks.CarRepository)
	s.mockClient = new(mocks.ClientRepository)

	s.mockRepo.On("Car").Return(s.mockCar)
	s.mockRepo.On("Client").Return(s.mockClient)

	s.service = NewClientService(s.mockRepo)
	s.principal = &domain.Principal{AccountID: 1, TenantID: 10}
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}

func (s *ClientServiceTestSuite) TestCreate_DefaultsToInterested() {
	ctx := context.Background()
	req := dto.CreateClientRequest{Name: "John Buyer", Phone: "+55 11 99999-0000"}

	s.mockClient.On("Create", ctx, mock.MatchedBy(func(c *domain.Client) bool {
		return c.TenantID == 10 && c.NegotiationStatus == domain.NegotiationInterested
	})).Return(nil)

	resp, err := s.service.Create(ctx, s.principal, req)

	s.NoError(err)
	s.Equal("interested", resp.NegotiationStatus)
	s.mockCar.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ClientServiceTestSuite) TestCreate_CarOfAnotherTenant() {
	// Arrange
	ctx := context.Background()
	carID := uint(77)
	req := dto.CreateClientRequest{Name: "John Buyer", Phone: "123", CarID: &carID}

	s.mockCar.On("GetByID", ctx, uint(10), carID).Return(nil, domain.ErrNotFound)

	// Act
	resp, err := s.service.Create(ctx, s.principal, req)

	// Assert
	s.Nil(resp)
	var nf *NotFoundError
	s.ErrorAs(err, &nf)
	s.Equal("Car", nf.Resource)
	s.mockClient.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ClientServiceTestSuite) TestList_ParsesDateBounds() {
	// Arrange
	ctx := context.Background()
	carID := uint(2)
	query := dto.ListClientsQuery{
		Status:        "negotiating",
		CarID:         &carID,
		CreatedAfter:  "2025-03-01",
		CreatedBefore: "2025-03-31",
	}
	after := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC)

	s.mockClient.On("List", ctx, mock.MatchedBy(func(f domain.ClientFilter) bool {
		return f.TenantID == 10 &&
			f.Status == "negotiating" &&
			f.CarID != nil && *f.CarID == 2 &&
			f.CreatedAfter.Equal(after) &&
			f.CreatedBefore.Equal(before) &&
			f.Limit == dto.DefaultPageLimit
	})).Return([]domain.Client{}, nil)

	// Act
	resp, err := s.service.List(ctx, s.principal, query)

	// Assert
	s.NoError(err)
	s.Empty(resp)
	s.mockClient.AssertExpectations(s.T())
}

func (s *ClientServiceTestSuite) TestList_InvalidDate() {
	ctx := context.Background()

	_, err := s.service.List(ctx, s.principal, dto.ListClientsQuery{CreatedAfter: "yesterday"})

	s.ErrorIs(err, ErrInvalidQuery)
	s.mockClient.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *ClientServiceTestSuite) TestUpdate_ReassignsCar() {
	ctx := context.Background()
	carID := uint(5)
	status := "closed"

	s.mockClient.On("GetByID", ctx, uint(10), uint(1)).Return(&domain.Client{ID: 1, TenantID: 10, Name: "John"}, nil)
	s.mockCar.On("GetByID", ctx, uint(10), carID).Return(&domain.Car{ID: carID, TenantID: 10}, nil)
	s.mockClient.On("Update", ctx, mock.MatchedBy(func(c *domain.Client) bool {
		return c.CarID != nil && *c.CarID == carID && c.NegotiationStatus == domain.NegotiationClosed
	})).Return(nil)

	resp, err := s.service.Update(ctx, s.principal, 1, dto.UpdateClientRequest{CarID: dto.OptionalOf(carID), NegotiationStatus: &status})

	s.NoError(err)
	s.Equal("closed", resp.NegotiationStatus)
	s.mockClient.AssertExpectations(s.T())
}

func (s *ClientServiceTestSuite) TestUpdate_NullClearsCarAndNotes() {
	ctx := context.Background()
	carID := uint(5)
	notes := "wants financing"
	email := "john@example.com"

	s.mockClient.On("GetByID", ctx, uint(10), uint(1)).
		Return(&domain.Client{ID: 1, TenantID: 10, Name: "John", CarID: &carID, Notes: &notes, Email: &email}, nil)
	s.mockClient.On("Update", ctx, mock.MatchedBy(func(c *domain.Client) bool {
		return c.CarID == nil && c.Notes == nil && c.Email != nil && *c.Email == email
	})).Return(nil)

	resp, err := s.service.Update(ctx, s.principal, 1, dto.UpdateClientRequest{
		CarID: dto.OptionalNull[uint](),
		Notes: dto.OptionalNull[string](),
	})

	s.NoError(err)
	s.Nil(resp.CarID)
	s.mockCar.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ClientServiceTestSuite) TestDelete_OtherTenantIsNotFound() {
	ctx := context.Background()

	s.mockClient.On("Delete", ctx, uint(10), uint(1)).Return(domain.ErrNotFound)

	err := s.service.Delete(ctx, s.principal, 1)

	s.EqualError(err, "Client not found")
}
