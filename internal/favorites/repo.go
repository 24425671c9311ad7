package favorites

import (
	"context"
	"time"

	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FavoriteView is one favorited product with its current catalog fields.
type FavoriteView struct {
	ProductID     uuid.UUID        `gorm:"column:product_id" json:"product_id"`
	Name          string           `gorm:"column:name" json:"name"`
	Category      string           `gorm:"column:category" json:"category"`
	Price         decimal.Decimal  `gorm:"column:price" json:"price"`
	DiscountPrice *decimal.Decimal `gorm:"column:discount_price" json:"discount_price,omitempty"`
	IsOnSale      bool             `gorm:"column:is_on_sale" json:"is_on_sale"`
	ImageURL      *string          `gorm:"column:image_url" json:"image_url,omitempty"`
	FavoritedAt   time.Time        `gorm:"column:favorited_at" json:"favorited_at"`
}

// Repository is the favorites persistence surface.
type Repository interface {
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]FavoriteView, error)
	ProductExists(ctx context.Context, productID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a favorites repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, userID, productID uuid.UUID) error {
	fav := models.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
	}
	return r.db.WithContext(ctx).Create(&fav).Error
}

func (r *repository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Favorite{}).Error
}

func (r *repository) List(ctx context.Context, userID uuid.UUID) ([]FavoriteView, error) {
	var views []FavoriteView
	err := r.db.WithContext(ctx).
		Table("favorites f").
		Select("f.product_id, p.name, p.category, p.price, p.discount_price, p.is_on_sale, p.image_url, f.created_at AS favorited_at").
		Joins("JOIN products p ON p.id = f.product_id").
		Where("f.user_id = ?", userID).
		Order("f.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
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
