package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/dealer-api/internal/domain"
)

type CarRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCarRepository(writerDB, readerDB *gorm.DB) *CarRepository {
	return &CarRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	return r.writerDB.WithContext(ctx).Create(car).Error
}

func (r *CarRepository) GetByID(ctx context.Context, tenantID, id uint) (*domain.Car, error) {
	var car domain.Car
	if err := getTenantScope(r.readerDB, ctx, tenantID).First(&car, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &car, nil
}

func (r *CarRepository) List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error) {
	query := getTenantScope(r.readerDB, ctx, filter.TenantID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var cars []domain.Car
	if err := paginate(query, filter.Offset, filter.Limit).Order("id").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// Update writes every column of car except its identity, scoped to car.TenantID
func (r *CarRepository) Update(ctx context.Context, car *domain.Car) error {
	result := getTenantScope(r.writerDB, ctx, car.TenantID).
		Model(car).
		Select("*").
		Omit("id", "tenant_id", "created_at", "Tenant").
		Updates(car)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, tenantID, id uint) error {
	result := getTenantScope(r.writerDB, ctx, tenantID).Delete(&domain.Car{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
