package search

import (
	"time"

	"github.com/angelmondragon/mercado-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MatchTier separates exact full-text hits from fuzzy-only hits. Exact
// always ranks first.
type MatchTier int

const (
	MatchTierExact MatchTier = 0
	MatchTierFuzzy MatchTier = 1
)

// Filters are the optional narrowing knobs on a search request.
type Filters struct {
	Category   *string          `json:"category,omitempty"`
	SupplierID *uuid.UUID       `json:"supplier_id,omitempty"`
	MinPrice   *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice   *decimal.Decimal `json:"max_price,omitempty"`
}

// Empty reports whether no filter is set.
func (f Filters) Empty() bool {
	return f.Category == nil && f.SupplierID == nil && f.MinPrice == nil && f.MaxPrice == nil
}

// Query is one request-scoped search input.
type Query struct {
	Term       string
	Filters    Filters
	Pagination pagination.Params
}

// RankedProduct is a product row plus its ranking signals.
type RankedProduct struct {
	ID            uuid.UUID        `gorm:"column:id" json:"id"`
	SupplierID    uuid.UUID        `gorm:"column:supplier_id" json:"supplier_id"`
	Name          string           `gorm:"column:name" json:"name"`
	Description   *string          `gorm:"column:description" json:"description,omitempty"`
	Category      string           `gorm:"column:category" json:"category"`
	Price         decimal.Decimal  `gorm:"column:price" json:"price"`
	DiscountPrice *decimal.Decimal `gorm:"column:discount_price" json:"discount_price,omitempty"`
	IsOnSale      bool             `gorm:"column:is_on_sale" json:"is_on_sale"`
	ImageURL      *string          `gorm:"column:image_url" json:"image_url,omitempty"`
	CreatedAt     time.Time        `gorm:"column:created_at" json:"created_at"`
	MatchTier     MatchTier        `gorm:"column:match_tier" json:"match_tier"`
	RankScore     float64          `gorm:"column:rank_score" json:"rank_score"`
	Similarity    float64          `gorm:"column:similarity" json:"similarity"`
}

// RankedDeal is a deal row plus its ranking signals.
type RankedDeal struct {
	ID              uuid.UUID        `gorm:"column:id" json:"id"`
	SupplierID      *uuid.UUID       `gorm:"column:supplier_id" json:"supplier_id,omitempty"`
	Title           string           `gorm:"column:title" json:"title"`
	Description     *string          `gorm:"column:description" json:"description,omitempty"`
	Category        *string          `gorm:"column:category" json:"category,omitempty"`
	DiscountPercent *decimal.Decimal `gorm:"column:discount_percent" json:"discount_percent,omitempty"`
	CreatedAt       time.Time        `gorm:"column:created_at" json:"created_at"`
	MatchTier       MatchTier        `gorm:"column:match_tier" json:"match_tier"`
	RankScore       float64          `gorm:"column:rank_score" json:"rank_score"`
	Similarity      float64          `gorm:"column:similarity" json:"similarity"`
}

// RankedSupplier is a supplier row plus its ranking signals.
type RankedSupplier struct {
	ID          uuid.UUID `gorm:"column:id" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	LogoURL     *string   `gorm:"column:logo_url" json:"logo_url,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	MatchTier   MatchTier `gorm:"column:match_tier" json:"match_tier"`
	RankScore   float64   `gorm:"column:rank_score" json:"rank_score"`
	Similarity  float64   `gorm:"column:similarity" json:"similarity"`
}

// ProductPage is the paginated product slice of a search response.
type ProductPage struct {
	Items []RankedProduct `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

// Result bundles the three entity result sets. Deals and suppliers are
// preview sets capped at a fixed size; only products paginate.
type Result struct {
	Products  ProductPage      `json:"products"`
	Deals     []RankedDeal     `json:"deals"`
	Suppliers []RankedSupplier `json:"suppliers"`
}
