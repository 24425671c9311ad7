package models

import (
	"time"

	"github.com/angelmondragon/mercado-backend/pkg/enums"
	"github.com/google/uuid"
)

// Account is a supplier operator or platform admin login. SupplierID is
// NULL for admin accounts.
type Account struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SupplierID   *uuid.UUID        `gorm:"column:supplier_id;type:uuid"`
	Email        string            `gorm:"column:email;not null;uniqueIndex:uq_accounts_email"`
	PasswordHash string            `gorm:"column:password_hash;not null"`
	Role         enums.AccountRole `gorm:"column:role;not null"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
