package favorites

import (
	"context"
	"fmt"

	"github.com/angelmondragon/mercado-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/google/uuid"
)

// Service exposes favorite management. Removing an absent favorite is a
// benign no-op; adding a duplicate is a conflict.
type Service interface {
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]FavoriteView, error)
}

type service struct {
	repo Repository
}

// NewService builds the favorites service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("favorites repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Add(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil || productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and product id required")
	}

	exists, err := s.repo.ProductExists(ctx, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check product")
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	if err := s.repo.Add(ctx, userID, productID); err != nil {
		if db.IsUniqueViolation(err, "") {
			return pkgerrors.New(pkgerrors.CodeConflict, "product already favorited")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add favorite")
	}
	return nil
}

func (s *service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil || productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and product id required")
	}
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove favorite")
	}
	return nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]FavoriteView, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	views, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list favorites")
	}
	if views == nil {
		views = []FavoriteView{}
	}
	return views, nil
}
