package auth

import (
	"github.com/angelmondragon/mercado-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims is the JWT payload for supplier and admin sessions.
type AccessTokenClaims struct {
	AccountID  uuid.UUID         `json:"account_id"`
	SupplierID *uuid.UUID        `json:"supplier_id,omitempty"`
	Role       enums.AccountRole `json:"role"`
	jwt.RegisteredClaims
}

// AccessTokenPayload carries the values minted into a new token.
type AccessTokenPayload struct {
	AccountID  uuid.UUID
	SupplierID *uuid.UUID
	Role       enums.AccountRole
	JTI        string
}
