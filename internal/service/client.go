package service

import (
	"context"
	"fmt"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/repository"
	"github.com/kingrain94/dealer-api/pkg/utils"
)

type ClientService struct {
	repo repository.Repository
}

func NewClientService(repo repository.Repository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) Create(ctx context.Context, principal *domain.Principal, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if req.CarID.Value != nil {
		if err := verifyCar(ctx, s.repo, principal.TenantID, *req.CarID.Value); err != nil {
			return nil, err
		}
	}

	client := req.ToClient(principal.TenantID)
	if err := s.repo.Client().Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return dto.FromClient(client), nil
}

func (s *ClientService) Get(ctx context.Context, principal *domain.Principal, id uint) (*dto.ClientResponse, error) {
	client, err := s.repo.Client().GetByID(ctx, principal.TenantID, id)
	if err != nil {
		return nil, notFound(err, "Client")
	}
	return dto.FromClient(client), nil
}

func (s *ClientService) List(ctx context.Context, principal *domain.Principal, query dto.ListClientsQuery) ([]dto.ClientResponse, error) {
	offset, limit := query.Bounds()
	filter := domain.ClientFilter{
		TenantID: principal.TenantID,
		Status:   query.Status,
		CarID:    query.CarID,
		Offset:   offset,
		Limit:    limit,
	}

	var err error
	if query.CreatedAfter != "" {
		if filter.CreatedAfter, err = utils.ParseDateBound(query.CreatedAfter, false); err != nil {
			return nil, fmt.Errorf("%w: created_after: %v", ErrInvalidQuery, err)
		}
	}
	if query.CreatedBefore != "" {
		if filter.CreatedBefore, err = utils.ParseDateBound(query.CreatedBefore, true); err != nil {
			return nil, fmt.Errorf("%w: created_before: %v", ErrInvalidQuery, err)
		}
	}

	clients, err := s.repo.Client().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return dto.FromClients(clients), nil
}

func (s *ClientService) Update(ctx context.Context, principal *domain.Principal, id uint, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := s.repo.Client().GetByID(ctx, principal.TenantID, id)
	if err != nil {
		return nil, notFound(err, "Client")
	}

	if req.CarID.Value != nil {
		if err := verifyCar(ctx, s.repo, principal.TenantID, *req.CarID.Value); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(client)
	if err := s.repo.Client().Update(ctx, client); err != nil {
		return nil, notFound(err, "Client")
	}
	return dto.FromClient(client), nil
}

func (s *ClientService) Delete(ctx context.Context, principal *domain.Principal, id uint) error {
	if err := s.repo.Client().Delete(ctx, principal.TenantID, id); err != nil {
		return notFound(err, "Client")
	}
	return nil
}

// verifyCar checks that carID names a car of tenantID
func verifyCar(ctx context.Context, repo repository.Repository, tenantID, carID uint) error {
	if _, err := repo.Car().GetByID(ctx, tenantID, carID); err != nil {
		return notFound(err, "Car")
	}
	return nil
}
