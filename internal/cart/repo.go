package cart

import (
	"context"

	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Line is one cart row joined with the catalog fields the client renders.
type Line struct {
	ProductID     uuid.UUID        `gorm:"column:product_id" json:"product_id"`
	Name          string           `gorm:"column:name" json:"name"`
	Quantity      int              `gorm:"column:quantity" json:"quantity"`
	Price         decimal.Decimal  `gorm:"column:price" json:"price"`
	DiscountPrice *decimal.Decimal `gorm:"column:discount_price" json:"discount_price,omitempty"`
	IsOnSale      bool             `gorm:"column:is_on_sale" json:"is_on_sale"`
}

// Repository is the cart persistence surface.
type Repository interface {
	ListLines(ctx context.Context, userID uuid.UUID) ([]Line, error)
	UpsertItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	ProductExists(ctx context.Context, productID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a cart repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListLines(ctx context.Context, userID uuid.UUID) ([]Line, error) {
	var lines []Line
	err := r.db.WithContext(ctx).
		Table("cart_items ci").
		Select("ci.product_id, p.name, ci.quantity, p.price, p.discount_price, p.is_on_sale").
		Joins("JOIN products p ON p.id = ci.product_id").
		Where("ci.user_id = ?", userID).
		Order("ci.created_at ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// UpsertItem inserts the line or replaces its quantity; the unique
// (user_id, product_id) pair makes repeated adds idempotent updates.
func (r *repository) UpsertItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(item).Error
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *repository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

func (r *repository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

func (r *repository) ProductExists(ctx context.Context, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
