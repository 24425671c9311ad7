package orders

import (
	"time"

	"github.com/angelmondragon/mercado-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one cart row joined with the catalog fields needed to
// price it. It is the only price read the finalization transaction makes.
type CartLine struct {
	ProductID     uuid.UUID        `gorm:"column:product_id"`
	Quantity      int              `gorm:"column:quantity"`
	Price         decimal.Decimal  `gorm:"column:price"`
	DiscountPrice *decimal.Decimal `gorm:"column:discount_price"`
	IsOnSale      bool             `gorm:"column:is_on_sale"`
}

// UnitPrice applies the snapshot rule: discount price while the sale flag
// is set, list price otherwise.
func (l CartLine) UnitPrice() decimal.Decimal {
	if l.IsOnSale && l.DiscountPrice != nil {
		return *l.DiscountPrice
	}
	return l.Price
}

// FinalizeResult is returned to the caller once the order is committed.
type FinalizeResult struct {
	OrderID     uuid.UUID       `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// OrderItemView is one frozen order line in a history read.
type OrderItemView struct {
	ProductID          uuid.UUID       `json:"product_id"`
	Quantity           int             `json:"quantity"`
	PriceAtTimeOfOrder decimal.Decimal `json:"price_at_time_of_order"`
}

// OrderView is a single order in a user's history.
type OrderView struct {
	ID          uuid.UUID         `json:"id"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Status      enums.OrderStatus `json:"status"`
	OrderDate   time.Time         `json:"order_date"`
	Items       []OrderItemView   `json:"items"`
}
