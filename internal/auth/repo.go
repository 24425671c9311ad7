package auth

import (
	"context"

	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository is the account persistence surface.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)
	CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an auth repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *repository) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *repository) CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}
