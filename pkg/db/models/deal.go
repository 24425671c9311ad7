package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deal is a promotional offer. SupplierID is NULL for platform-wide deals,
// which stay visible regardless of any supplier's active flag.
type Deal struct {
	ID              uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SupplierID      *uuid.UUID       `gorm:"column:supplier_id;type:uuid"`
	Title           string           `gorm:"column:title;not null"`
	Description     *string          `gorm:"column:description"`
	Category        *string          `gorm:"column:category"`
	DiscountPercent *decimal.Decimal `gorm:"column:discount_percent;type:numeric(5,2)"`
	StartsAt        *time.Time       `gorm:"column:starts_at"`
	EndsAt          *time.Time       `gorm:"column:ends_at"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
