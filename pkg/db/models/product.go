package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a supplier listing. The search_vector column is
// maintained by the database (generated from name + description) and is
// deliberately absent here.
type Product struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SupplierID    uuid.UUID        `gorm:"column:supplier_id;type:uuid;not null"`
	Name          string           `gorm:"column:name;not null"`
	Description   *string          `gorm:"column:description"`
	Category      string           `gorm:"column:category;not null"`
	Price         decimal.Decimal  `gorm:"column:price;type:numeric(10,2);not null"`
	DiscountPrice *decimal.Decimal `gorm:"column:discount_price;type:numeric(10,2)"`
	IsOnSale      bool             `gorm:"column:is_on_sale;not null;default:false"`
	ImageURL      *string          `gorm:"column:image_url"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// EffectivePrice is the unit price a buyer pays right now: the discount
// price while a sale is running, the list price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.IsOnSale && p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
