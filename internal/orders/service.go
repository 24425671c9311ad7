package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	"github.com/angelmondragon/mercado-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultTxTimeout = 10 * time.Second

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service converts carts into immutable priced orders and serves order
// history reads.
type Service interface {
	Finalize(ctx context.Context, userID uuid.UUID) (*FinalizeResult, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}

type service struct {
	repo      Repository
	tx        txRunner
	txTimeout time.Duration
}

// NewService builds an order service with the required dependencies.
func NewService(repo Repository, tx txRunner, txTimeout time.Duration) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if txTimeout <= 0 {
		txTimeout = defaultTxTimeout
	}
	return &service{repo: repo, tx: tx, txTimeout: txTimeout}, nil
}

// Finalize snapshots the user's cart into one order plus its items and
// clears the cart, all inside a single transaction. Any failure after the
// cart read rolls everything back and leaves the cart intact.
func (s *service) Finalize(ctx context.Context, userID uuid.UUID) (*FinalizeResult, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	var result *FinalizeResult
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		lines, err := repo.LockCartLines(ctx, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read cart for pricing")
		}
		if len(lines) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			unit := line.UnitPrice()
			total = total.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				ProductID:          line.ProductID,
				Quantity:           line.Quantity,
				PriceAtTimeOfOrder: unit,
			})
		}
		total = total.Round(2)

		order, err := repo.CreateOrder(ctx, &models.Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      enums.OrderStatusPending,
			OrderDate:   time.Now().UTC(),
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "order creation failed")
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := repo.CreateOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "order creation failed")
		}

		if err := repo.ClearCart(ctx, userID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "order creation failed")
		}

		result = &FinalizeResult{OrderID: order.ID, TotalAmount: total}
		return nil
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "order creation failed")
	}
	return result, nil
}

func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	view := toOrderView(*order)
	return &view, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}
	return views, nil
}

func toOrderView(order models.Order) OrderView {
	items := make([]OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemView{
			ProductID:          item.ProductID,
			Quantity:           item.Quantity,
			PriceAtTimeOfOrder: item.PriceAtTimeOfOrder,
		})
	}
	return OrderView{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		OrderDate:   order.OrderDate,
		Items:       items,
	}
}
