package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem freezes one cart line at finalization time.
// PriceAtTimeOfOrder never changes after insert, whatever happens to the
// catalog price later.
type OrderItem struct {
	ID                 uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID            uuid.UUID       `gorm:"column:order_id;type:uuid;not null"`
	ProductID          uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	Quantity           int             `gorm:"column:quantity;not null"`
	PriceAtTimeOfOrder decimal.Decimal `gorm:"column:price_at_time_of_order;type:numeric(10,2);not null"`
}
