package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/dealer-api/internal/domain"
)

type ClientRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewClientRepository(writerDB, readerDB *gorm.DB) *ClientRepository {
	return &ClientRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	return r.writerDB.WithContext(ctx).Create(client).Error
}

func (r *ClientRepository) GetByID(ctx context.Context, tenantID, id uint) (*domain.Client, error) {
	var client domain.Client
	if err := getTenantScope(r.readerDB, ctx, tenantID).First(&client, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &client, nil
}

func (r *ClientRepository) List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	query := getTenantScope(r.readerDB, ctx, filter.TenantID)
	if filter.Status != "" {
		query = query.Where("negotiation_status = ?", filter.Status)
	}
	if filter.CarID != nil {
		query = query.Where("car_id = ?", *filter.CarID)
	}
	if !filter.CreatedAfter.IsZero() {
		query = query.Where("created_at >= ?", filter.CreatedAfter)
	}
	if !filter.CreatedBefore.IsZero() {
		query = query.Where("created_at <= ?", filter.CreatedBefore)
	}

	var clients []domain.Client
	if err := paginate(query, filter.Offset, filter.Limit).Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	result := getTenantScope(r.writerDB, ctx, client.TenantID).
		Model(client).
		Select("*").
		Omit("id", "tenant_id", "created_at", "Tenant", "Car").
		Updates(client)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, tenantID, id uint) error {
	result := getTenantScope(r.writerDB, ctx, tenantID).Delete(&domain.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
