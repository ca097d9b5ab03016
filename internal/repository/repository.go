package repository

import (
	"context"

	"github.com/kingrain94/dealer-api/internal/domain"
)

// Lookups return domain.ErrNotFound for missing rows. Every method that takes a tenantID
// also returns domain.ErrNotFound for rows owned by a different tenant.

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.Tenant, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	// CreateIfAbsent inserts the tenant unless its slug is taken, in which case it
	// returns domain.ErrTenantSlugConflict and leaves the existing row untouched.
	CreateIfAbsent(ctx context.Context, tenant *domain.Tenant) error
	UpdateName(ctx context.Context, id uint, name string) (*domain.Tenant, error)
}

//go:generate mockery --name AccountRepository --output ../mocks
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id uint) (*domain.Account, error)
	// Create returns domain.ErrDuplicateEmail when the email is already registered
	Create(ctx context.Context, account *domain.Account) error
}

//go:generate mockery --name CarRepository --output ../mocks
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, tenantID, id uint) (*domain.Car, error)
	List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, tenantID, id uint) error
}

//go:generate mockery --name ClientRepository --output ../mocks
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, tenantID, id uint) (*domain.Client, error)
	List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, tenantID, id uint) error
}

// DocumentRepository scopes through the owning car, documents carry no tenant column.
//
//go:generate mockery --name DocumentRepository --output ../mocks
type DocumentRepository interface {
	Create(ctx context.Context, document *domain.Document) error
	GetByID(ctx context.Context, tenantID, id uint) (*domain.Document, error)
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error)
	Update(ctx context.Context, tenantID uint, document *domain.Document) error
	Delete(ctx context.Context, tenantID, id uint) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	Account() AccountRepository
	Car() CarRepository
	Client() ClientRepository
	Document() DocumentRepository
	// Transaction runs fn against a repository bound to a single writer transaction.
	// fn returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(Repository) error) error
}
