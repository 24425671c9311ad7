package cart

import (
	"context"
	"testing"

	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/google/uuid"
)

type stubCartRepo struct {
	lines         []Line
	upserted      *models.CartItem
	removed       bool
	cleared       bool
	productExists bool
}

func (s *stubCartRepo) ListLines(ctx context.Context, userID uuid.UUID) ([]Line, error) {
	return s.lines, nil
}

func (s *stubCartRepo) UpsertItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	s.upserted = item
	return item, nil
}

func (s *stubCartRepo) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	s.removed = true
	return nil
}

func (s *stubCartRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	s.cleared = true
	return nil
}

func (s *stubCartRepo) ProductExists(ctx context.Context, productID uuid.UUID) (bool, error) {
	return s.productExists, nil
}

func TestUpsertItemRejectsNonPositiveQuantity(t *testing.T) {
	repo := &stubCartRepo{productExists: true}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("service constructor failed: %v", err)
	}

	for _, qty := range []int{0, -1} {
		err := svc.UpsertItem(context.Background(), uuid.New(), uuid.New(), qty)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("quantity %d: expected validation error got %v", qty, err)
		}
	}
	if repo.upserted != nil {
		t.Fatal("invalid quantity must not reach the store")
	}
}

func TestUpsertItemUnknownProduct(t *testing.T) {
	repo := &stubCartRepo{productExists: false}
	svc, _ := NewService(repo)

	err := svc.UpsertItem(context.Background(), uuid.New(), uuid.New(), 2)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found got %v", err)
	}
}

func TestUpsertItemPersists(t *testing.T) {
	repo := &stubCartRepo{productExists: true}
	svc, _ := NewService(repo)

	userID := uuid.New()
	productID := uuid.New()
	if err := svc.UpsertItem(context.Background(), userID, productID, 3); err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if repo.upserted == nil || repo.upserted.Quantity != 3 ||
		repo.upserted.UserID != userID || repo.upserted.ProductID != productID {
		t.Fatalf("unexpected upsert %+v", repo.upserted)
	}
}

func TestGetCartEmptyIsNotError(t *testing.T) {
	svc, _ := NewService(&stubCartRepo{})
	lines, err := svc.GetCart(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Fatalf("expected empty slice got %v", lines)
	}
}

func TestRemoveItemMissingIsNoOp(t *testing.T) {
	repo := &stubCartRepo{}
	svc, _ := NewService(repo)
	if err := svc.RemoveItem(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("expected benign no-op got %v", err)
	}
	if !repo.removed {
		t.Fatal("expected delete issued")
	}
}
