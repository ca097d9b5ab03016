package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/dealer-api/internal/domain"
)

type DocumentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewDocumentRepository(writerDB, readerDB *gorm.DB) *DocumentRepository {
	return &DocumentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Create trusts document.CarID, callers verify the car belongs to the acting tenant first
func (r *DocumentRepository) Create(ctx context.Context, document *domain.Document) error {
	return r.writerDB.WithContext(ctx).Create(document).Error
}

func (r *DocumentRepository) GetByID(ctx context.Context, tenantID, id uint) (*domain.Document, error) {
	var document domain.Document
	err := getDocumentReadScope(r.readerDB, ctx, tenantID).
		Select("documents.*").
		Where("documents.id = ?", id).
		Take(&document).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &document, nil
}

func (r *DocumentRepository) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error) {
	query := getDocumentReadScope(r.readerDB, ctx, filter.TenantID).Select("documents.*")
	if filter.CarID != nil {
		query = query.Where("documents.car_id = ?", *filter.CarID)
	}
	if filter.DocumentType != "" {
		query = query.Where("documents.document_type = ?", filter.DocumentType)
	}

	var documents []domain.Document
	if err := paginate(query, filter.Offset, filter.Limit).Order("documents.id").Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *DocumentRepository) Update(ctx context.Context, tenantID uint, document *domain.Document) error {
	result := getDocumentWriteScope(r.writerDB, ctx, tenantID).
		Model(document).
		Select("*").
		Omit("id", "created_at", "Car").
		Updates(document)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, tenantID, id uint) error {
	result := getDocumentWriteScope(r.writerDB, ctx, tenantID).Delete(&domain.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
