package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingrain94/dealer-api/internal/domain"
)

type AccountRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAccountRepository(writerDB, readerDB *gorm.DB) *AccountRepository {
	return &AccountRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	if err := r.readerDB.WithContext(ctx).First(&account, "email = ?", email).Error; err != nil {
		return nil, translateError(err)
	}
	return &account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*domain.Account, error) {
	var account domain.Account
	if err := r.readerDB.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if err := r.writerDB.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}
