package models

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a vendor eligible to list products and deals. Inactive
// suppliers are invisible to every customer-facing read.
type Supplier struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description *string   `gorm:"column:description"`
	Email       string    `gorm:"column:email;not null"`
	Phone       *string   `gorm:"column:phone"`
	LogoURL     *string   `gorm:"column:logo_url"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
