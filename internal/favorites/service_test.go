package favorites

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/google/uuid"
)

type stubFavoritesRepo struct {
	addErr        error
	removeCalled  bool
	productExists bool
	views         []FavoriteView
}

func (s *stubFavoritesRepo) Add(ctx context.Context, userID, productID uuid.UUID) error {
	return s.addErr
}

func (s *stubFavoritesRepo) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	s.removeCalled = true
	return nil
}

func (s *stubFavoritesRepo) List(ctx context.Context, userID uuid.UUID) ([]FavoriteView, error) {
	return s.views, nil
}

func (s *stubFavoritesRepo) ProductExists(ctx context.Context, productID uuid.UUID) (bool, error) {
	return s.productExists, nil
}

func TestAddDuplicateFavoriteConflict(t *testing.T) {
	repo := &stubFavoritesRepo{
		productExists: true,
		addErr:        errors.New("UNIQUE constraint failed: favorites.user_id, favorites.product_id"),
	}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("service constructor failed: %v", err)
	}

	err = svc.Add(context.Background(), uuid.New(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict got %v", err)
	}
}

func TestAddFavoriteUnknownProduct(t *testing.T) {
	svc, _ := NewService(&stubFavoritesRepo{productExists: false})
	err := svc.Add(context.Background(), uuid.New(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found got %v", err)
	}
}

func TestRemoveFavoriteMissingIsBenign(t *testing.T) {
	repo := &stubFavoritesRepo{}
	svc, _ := NewService(repo)
	if err := svc.Remove(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("expected benign no-op got %v", err)
	}
	if !repo.removeCalled {
		t.Fatal("expected delete issued")
	}
}

func TestListFavoritesEmpty(t *testing.T) {
	svc, _ := NewService(&stubFavoritesRepo{})
	views, err := svc.List(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if views == nil || len(views) != 0 {
		t.Fatalf("expected empty slice got %v", views)
	}
}
