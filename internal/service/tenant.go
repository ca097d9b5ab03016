package service

import (
	"context"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/repository"
)

type TenantService struct {
	repo repository.Repository
}

func NewTenantService(repo repository.Repository) *TenantService {
	return &TenantService{repo: repo}
}

// Get returns the principal's own tenant, there is no way to address another one
func (s *TenantService) Get(ctx context.Context, principal *domain.Principal) (*dto.TenantResponse, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, principal.TenantID)
	if err != nil {
		return nil, notFound(err, "Tenant")
	}
	return dto.FromTenant(tenant), nil
}

// Rename changes the display name only. The slug stays what registration derived.
func (s *TenantService) Rename(ctx context.Context, principal *domain.Principal, req dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	if !principal.IsAdmin {
		return nil, ErrForbidden
	}

	tenant, err := s.repo.Tenant().UpdateName(ctx, principal.TenantID, req.Name)
	if err != nil {
		return nil, notFound(err, "Tenant")
	}
	return dto.FromTenant(tenant), nil
}
