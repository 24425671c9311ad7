package catalog

import (
	"time"

	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	"github.com/angelmondragon/mercado-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductFilters describe the supported filter knobs for the browse endpoint.
type ProductFilters struct {
	Category   *string          `json:"category,omitempty"`
	SupplierID *uuid.UUID       `json:"supplier_id,omitempty"`
	MinPrice   *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice   *decimal.Decimal `json:"max_price,omitempty"`
	OnSale     *bool            `json:"on_sale,omitempty"`
}

// ProductList is one page of the product browse response.
type ProductList struct {
	Items []models.Product `json:"items"`
	Meta  pagination.Meta  `json:"meta"`
}

// CreateProductInput carries the fields a supplier submits for a new listing.
type CreateProductInput struct {
	Name          string           `json:"name" validate:"required"`
	Description   *string          `json:"description"`
	Category      string           `json:"category" validate:"required"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	IsOnSale      bool             `json:"is_on_sale"`
	ImageURL      *string          `json:"image_url"`
}

// UpdateProductInput carries a partial listing update; nil fields are left
// untouched.
type UpdateProductInput struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	Price         *decimal.Decimal `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	IsOnSale      *bool            `json:"is_on_sale"`
	ImageURL      *string          `json:"image_url"`
}

// CreateDealInput carries the fields a supplier submits for a new deal.
type CreateDealInput struct {
	Title           string           `json:"title" validate:"required"`
	Description     *string          `json:"description"`
	Category        *string          `json:"category"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	StartsAt        *time.Time       `json:"starts_at"`
	EndsAt          *time.Time       `json:"ends_at"`
}
