package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/dealer-api/internal/config"
	"github.com/kingrain94/dealer-api/internal/repository"
)

type postgresRepository struct {
	writerDB     *gorm.DB
	readerDB     *gorm.DB
	tenantRepo   repository.TenantRepository
	accountRepo  repository.AccountRepository
	carRepo      repository.CarRepository
	clientRepo   repository.ClientRepository
	documentRepo repository.DocumentRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return newPostgresRepository(dbConnections.Writer, dbConnections.Reader)
}

func newPostgresRepository(writerDB, readerDB *gorm.DB) *postgresRepository {
	return &postgresRepository{
		writerDB:     writerDB,
		readerDB:     readerDB,
		tenantRepo:   NewTenantRepository(writerDB, readerDB),
		accountRepo:  NewAccountRepository(writerDB, readerDB),
		carRepo:      NewCarRepository(writerDB, readerDB),
		clientRepo:   NewClientRepository(writerDB, readerDB),
		documentRepo: NewDocumentRepository(writerDB, readerDB),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Account() repository.AccountRepository {
	return r.accountRepo
}

func (r *postgresRepository) Car() repository.CarRepository {
	return r.carRepo
}

func (r *postgresRepository) Client() repository.ClientRepository {
	return r.clientRepo
}

func (r *postgresRepository) Document() repository.DocumentRepository {
	return r.documentRepo
}

// Transaction binds both reader and writer to the transaction so reads inside fn see its own writes
func (r *postgresRepository) Transaction(ctx context.Context, fn func(repository.Repository) error) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newPostgresRepository(tx, tx))
	})
}
