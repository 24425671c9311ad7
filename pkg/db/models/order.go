package models

import (
	"time"

	"github.com/angelmondragon/mercado-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the immutable result of cart finalization. Only Status may
// change after commit, and that transition belongs to fulfillment.
type Order struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID         `gorm:"column:user_id;type:uuid;not null"`
	TotalAmount decimal.Decimal   `gorm:"column:total_amount;type:numeric(12,2);not null"`
	Status      enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	OrderDate   time.Time         `gorm:"column:order_date;not null"`
	Items       []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
