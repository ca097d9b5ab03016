package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingrain94/dealer-api/internal/domain"
)

// getTenantScope restricts a query on a table with its own tenant_id column
func getTenantScope(db *gorm.DB, ctx context.Context, tenantID uint) *gorm.DB {
	return db.WithContext(ctx).Where("tenant_id = ?", tenantID)
}

// getDocumentReadScope joins documents to their car and filters on the car's tenant
func getDocumentReadScope(db *gorm.DB, ctx context.Context, tenantID uint) *gorm.DB {
	return db.WithContext(ctx).
		Model(&domain.Document{}).
		Joins("JOIN cars ON cars.id = documents.car_id").
		Where("cars.tenant_id = ?", tenantID)
}

// getDocumentWriteScope is the UPDATE/DELETE form of getDocumentReadScope, postgres has no UPDATE ... JOIN
func getDocumentWriteScope(db *gorm.DB, ctx context.Context, tenantID uint) *gorm.DB {
	ownedCars := db.WithContext(ctx).Model(&domain.Car{}).Select("id").Where("tenant_id = ?", tenantID)
	return db.WithContext(ctx).Where("car_id IN (?)", ownedCars)
}

func paginate(db *gorm.DB, offset, limit int) *gorm.DB {
	if offset > 0 {
		db = db.Offset(offset)
	}
	if limit > 0 {
		db = db.Limit(limit)
	}
	return db
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// AutoMigrate creates or updates every table the API uses
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Tenant{},
		&domain.Account{},
		&domain.Car{},
		&domain.Client{},
		&domain.Document{},
	)
}
