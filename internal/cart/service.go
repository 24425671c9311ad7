package cart

import (
	"context"
	"fmt"

	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/google/uuid"
)

// Service exposes cart reads and mutations. Finalization reads the same
// rows through its own transactional path, not through this service.
type Service interface {
	GetCart(ctx context.Context, userID uuid.UUID) ([]Line, error)
	UpsertItem(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService builds the cart service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetCart(ctx context.Context, userID uuid.UUID) ([]Line, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	lines, err := s.repo.ListLines(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	if lines == nil {
		lines = []Line{}
	}
	return lines, nil
}

func (s *service) UpsertItem(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	exists, err := s.repo.ProductExists(ctx, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check product")
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	_, err = s.repo.UpsertItem(ctx, &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save cart item")
	}
	return nil
}

// RemoveItem drops the cart line; removing an absent line is a no-op.
func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil || productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and product id required")
	}
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	return nil
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if err := s.repo.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	return nil
}
