package auth

import (
	"github.com/angelmondragon/mercado-backend/pkg/enums"
	"github.com/google/uuid"
)

// LoginInput carries the credentials from the login request body.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the successful login payload.
type LoginResult struct {
	AccessToken string            `json:"access_token"`
	AccountID   uuid.UUID         `json:"account_id"`
	SupplierID  *uuid.UUID        `json:"supplier_id,omitempty"`
	Role        enums.AccountRole `json:"role"`
}

// RegisterSupplierInput creates a supplier plus its first operator account.
type RegisterSupplierInput struct {
	SupplierName string  `json:"supplier_name" validate:"required"`
	Description  *string `json:"description"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        *string `json:"phone"`
	Password     string  `json:"password" validate:"required,min=8"`
}
