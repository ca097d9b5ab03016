//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/repository"
)

type PostgresRepositoryTestSuite struct {
	suite.Suite
	container *pgmodule.PostgresContainer
	db        *gorm.DB
	repo      repository.Repository
}

func TestPostgresRepository(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}

func (s *PostgresRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgmodule.Run(ctx,
		"postgres:16-alpine",
		pgmodule.WithDatabase("dealer_test"),
		pgmodule.WithUsername("test"),
		pgmodule.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		s.T().Skipf("could not start PostgreSQL container: %v", err)
	}
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(AutoMigrate(s.db))

	s.repo = newPostgresRepository(s.db, s.db)
}

func (s *PostgresRepositoryTestSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PostgresRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE documents, clients, cars, users, tenants RESTART IDENTITY CASCADE").Error)
}

func (s *PostgresRepositoryTestSuite) createTenant(slug string) *domain.Tenant {
	tenant := &domain.Tenant{Slug: slug, Name: slug, IsActive: true}
	s.Require().NoError(s.repo.Tenant().CreateIfAbsent(context.Background(), tenant))
	return tenant
}

func (s *PostgresRepositoryTestSuite) createCar(tenantID uint, title string) *domain.Car {
	car := &domain.Car{TenantID: tenantID, Title: title, Brand: "Honda", Model: "Civic", Year: 2020, Status: domain.CarStatusAvailable}
	s.Require().NoError(s.repo.Car().Create(context.Background(), car))
	return car
}

func (s *PostgresRepositoryTestSuite) TestCreateIfAbsent_Conflict() {
	ctx := context.Background()
	s.createTenant("acme-motors")

	err := s.repo.Tenant().CreateIfAbsent(ctx, &domain.Tenant{Slug: "acme-motors", Name: "Acme Motors", IsActive: true})

	s.ErrorIs(err, domain.ErrTenantSlugConflict)
}

func (s *PostgresRepositoryTestSuite) TestCreateIfAbsent_ConcurrentSameSlug() {
	ctx := context.Background()
	const attempts = 8

	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.repo.Tenant().CreateIfAbsent(ctx, &domain.Tenant{Slug: "race", Name: "Race", IsActive: true})
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
		} else {
			s.ErrorIs(err, domain.ErrTenantSlugConflict)
		}
	}
	s.Equal(1, created)

	var count int64
	s.Require().NoError(s.db.Model(&domain.Tenant{}).Where("slug = ?", "race").Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *PostgresRepositoryTestSuite) TestAccountCreate_DuplicateEmail() {
	ctx := context.Background()
	tenant := s.createTenant("acme")

	first := &domain.Account{TenantID: tenant.ID, Email: "owner@acme.com", PasswordDigest: "x$y", FullName: "Owner", IsActive: true}
	s.Require().NoError(s.repo.Account().Create(ctx, first))

	err := s.repo.Account().Create(ctx, &domain.Account{TenantID: tenant.ID, Email: "owner@acme.com", PasswordDigest: "x$y", FullName: "Other", IsActive: true})

	s.ErrorIs(err, domain.ErrDuplicateEmail)
}

func (s *PostgresRepositoryTestSuite) TestCars_TenantIsolation() {
	ctx := context.Background()
	acme := s.createTenant("acme")
	other := s.createTenant("other")
	ours := s.createCar(acme.ID, "Civic")
	s.createCar(other.ID, "Corolla")

	cars, err := s.repo.Car().List(ctx, domain.CarFilter{TenantID: acme.ID, Limit: 100})
	s.Require().NoError(err)
	s.Len(cars, 1)
	s.Equal(ours.ID, cars[0].ID)

	_, err = s.repo.Car().GetByID(ctx, other.ID, ours.ID)
	s.ErrorIs(err, domain.ErrNotFound)

	ours.TenantID = other.ID
	s.ErrorIs(s.repo.Car().Update(ctx, ours), domain.ErrNotFound)
	s.ErrorIs(s.repo.Car().Delete(ctx, other.ID, ours.ID), domain.ErrNotFound)
}

func (s *PostgresRepositoryTestSuite) TestCars_StatusFilterAndPaging() {
	ctx := context.Background()
	acme := s.createTenant("acme")
	for _, title := range []string{"A", "B", "C"} {
		s.createCar(acme.ID, title)
	}
	sold := s.createCar(acme.ID, "D")
	sold.Status = domain.CarStatusSold
	s.Require().NoError(s.repo.Car().Update(ctx, sold))

	available, err := s.repo.Car().List(ctx, domain.CarFilter{TenantID: acme.ID, Status: "available", Offset: 1, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal("B", available[0].Title)
}

func (s *PostgresRepositoryTestSuite) TestDocuments_ScopedThroughCar() {
	ctx := context.Background()
	acme := s.createTenant("acme")
	other := s.createTenant("other")
	car := s.createCar(acme.ID, "Civic")

	document := &domain.Document{CarID: car.ID, Name: "Title", DocumentType: "title"}
	s.Require().NoError(s.repo.Document().Create(ctx, document))

	found, err := s.repo.Document().GetByID(ctx, acme.ID, document.ID)
	s.Require().NoError(err)
	s.Equal("Title", found.Name)

	_, err = s.repo.Document().GetByID(ctx, other.ID, document.ID)
	s.ErrorIs(err, domain.ErrNotFound)

	listed, err := s.repo.Document().List(ctx, domain.DocumentFilter{TenantID: other.ID, Limit: 100})
	s.Require().NoError(err)
	s.Empty(listed)

	document.Name = "Stolen"
	s.ErrorIs(s.repo.Document().Update(ctx, other.ID, document), domain.ErrNotFound)
	s.ErrorIs(s.repo.Document().Delete(ctx, other.ID, document.ID), domain.ErrNotFound)
	s.NoError(s.repo.Document().Delete(ctx, acme.ID, document.ID))
}

func (s *PostgresRepositoryTestSuite) TestClients_CreatedRange() {
	ctx := context.Background()
	acme := s.createTenant("acme")

	client := &domain.Client{TenantID: acme.ID, Name: "John", Phone: "1", NegotiationStatus: domain.NegotiationInterested}
	s.Require().NoError(s.repo.Client().Create(ctx, client))

	now := time.Now()
	inRange, err := s.repo.Client().List(ctx, domain.ClientFilter{TenantID: acme.ID, CreatedAfter: now.Add(-time.Hour), Limit: 100})
	s.Require().NoError(err)
	s.Len(inRange, 1)

	future, err := s.repo.Client().List(ctx, domain.ClientFilter{TenantID: acme.ID, CreatedAfter: now.Add(time.Hour), Limit: 100})
	s.Require().NoError(err)
	s.Empty(future)
}

func (s *PostgresRepositoryTestSuite) TestTransaction_RollsBack() {
	ctx := context.Background()

	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		if err := tx.Tenant().CreateIfAbsent(ctx, &domain.Tenant{Slug: "rolled-back", Name: "x", IsActive: true}); err != nil {
			return err
		}
		return domain.ErrDuplicateEmail
	})

	s.ErrorIs(err, domain.ErrDuplicateEmail)
	_, err = s.repo.Tenant().FindBySlug(ctx, "rolled-back")
	s.ErrorIs(err, domain.ErrNotFound)
}
