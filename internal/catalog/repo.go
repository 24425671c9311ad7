package catalog

import (
	"context"

	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	"github.com/angelmondragon/mercado-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the catalog persistence surface. Customer-facing reads
// filter out inactive suppliers; owner lookups do not, so suppliers can
// still manage their listings while deactivated.
type Repository interface {
	ListProducts(ctx context.Context, filters ProductFilters, params pagination.Params) (*ProductList, error)
	FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindProductOwned(ctx context.Context, id, supplierID uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	ListDeals(ctx context.Context) ([]models.Deal, error)
	FindDealOwned(ctx context.Context, id, supplierID uuid.UUID) (*models.Deal, error)
	CreateDeal(ctx context.Context, deal *models.Deal) (*models.Deal, error)
	DeleteDeal(ctx context.Context, id uuid.UUID) error

	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	FindSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	SetSupplierActive(ctx context.Context, id uuid.UUID, active bool) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// activeProducts applies the mandatory active-supplier filter plus the
// browse filters. The data and count queries share it so the pagination
// metadata cannot drift from the page contents.
func (r *repository) activeProducts(ctx context.Context, filters ProductFilters) *gorm.DB {
	qb := r.db.WithContext(ctx).
		Table("products p").
		Joins("JOIN suppliers s ON s.id = p.supplier_id").
		Where("s.is_active = ?", true)

	if filters.Category != nil {
		qb = qb.Where("p.category = ?", *filters.Category)
	}
	if filters.SupplierID != nil {
		qb = qb.Where("p.supplier_id = ?", *filters.SupplierID)
	}
	if filters.MinPrice != nil {
		qb = qb.Where("p.price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		qb = qb.Where("p.price <= ?", *filters.MaxPrice)
	}
	if filters.OnSale != nil {
		qb = qb.Where("p.is_on_sale = ?", *filters.OnSale)
	}
	return qb
}

func (r *repository) ListProducts(ctx context.Context, filters ProductFilters, params pagination.Params) (*ProductList, error) {
	params = pagination.Normalize(params)

	var total int64
	if err := r.activeProducts(ctx, filters).Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Product
	err := r.activeProducts(ctx, filters).
		Select("p.*").
		Order("p.created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return &ProductList{
		Items: items,
		Meta:  pagination.NewMeta(params, total),
	}, nil
}

func (r *repository) FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN suppliers s ON s.id = products.supplier_id").
		Where("s.is_active = ?", true).
		Where("products.id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) FindProductOwned(ctx context.Context, id, supplierID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND supplier_id = ?", id, supplierID).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *repository) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Product{}).Error
}

// ListDeals returns customer-visible deals: platform deals always,
// supplier deals only while the supplier is active.
func (r *repository) ListDeals(ctx context.Context) ([]models.Deal, error) {
	var deals []models.Deal
	err := r.db.WithContext(ctx).
		Table("deals d").
		Select("d.*").
		Joins("LEFT JOIN suppliers s ON s.id = d.supplier_id").
		Where("(d.supplier_id IS NULL OR s.is_active = ?)", true).
		Order("d.created_at DESC").
		Scan(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *repository) FindDealOwned(ctx context.Context, id, supplierID uuid.UUID) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).
		Where("id = ? AND supplier_id = ?", id, supplierID).
		First(&deal).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *repository) CreateDeal(ctx context.Context, deal *models.Deal) (*models.Deal, error) {
	if err := r.db.WithContext(ctx).Create(deal).Error; err != nil {
		return nil, err
	}
	return deal, nil
}

func (r *repository) DeleteDeal(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Deal{}).Error
}

func (r *repository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *repository) FindSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&supplier).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *repository) SetSupplierActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Supplier{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
