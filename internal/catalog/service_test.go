package catalog

import (
	"context"
	"testing"

	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/angelmondragon/mercado-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubCatalogRepo struct {
	products      map[uuid.UUID]*models.Product
	supplier      *models.Supplier
	activeUpdates map[uuid.UUID]bool
	deleted       []uuid.UUID
}

func (s *stubCatalogRepo) ListProducts(ctx context.Context, filters ProductFilters, params pagination.Params) (*ProductList, error) {
	return &ProductList{Items: []models.Product{}, Meta: pagination.NewMeta(params, 0)}, nil
}

func (s *stubCatalogRepo) FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalogRepo) FindProductOwned(ctx context.Context, id, supplierID uuid.UUID) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok || p.SupplierID != supplierID {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *stubCatalogRepo) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if s.products == nil {
		s.products = make(map[uuid.UUID]*models.Product)
	}
	s.products[product.ID] = product
	return product, nil
}

func (s *stubCatalogRepo) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	s.products[product.ID] = product
	return product, nil
}

func (s *stubCatalogRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.products, id)
	return nil
}

func (s *stubCatalogRepo) ListDeals(ctx context.Context) ([]models.Deal, error) {
	return nil, nil
}

func (s *stubCatalogRepo) FindDealOwned(ctx context.Context, id, supplierID uuid.UUID) (*models.Deal, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalogRepo) CreateDeal(ctx context.Context, deal *models.Deal) (*models.Deal, error) {
	if deal.ID == uuid.Nil {
		deal.ID = uuid.New()
	}
	return deal, nil
}

func (s *stubCatalogRepo) DeleteDeal(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubCatalogRepo) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return nil, nil
}

func (s *stubCatalogRepo) FindSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	if s.supplier == nil || s.supplier.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.supplier, nil
}

func (s *stubCatalogRepo) SetSupplierActive(ctx context.Context, id uuid.UUID, active bool) error {
	if s.supplier == nil || s.supplier.ID != id {
		return gorm.ErrRecordNotFound
	}
	if s.activeUpdates == nil {
		s.activeUpdates = make(map[uuid.UUID]bool)
	}
	s.activeUpdates[id] = active
	return nil
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestCreateProductSaleRequiresDiscount(t *testing.T) {
	svc, _ := NewService(&stubCatalogRepo{})
	_, err := svc.CreateProduct(context.Background(), uuid.New(), CreateProductInput{
		Name:     "Widget",
		Category: "Tools",
		Price:    dec(t, "10.00"),
		IsOnSale: true,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error got %v", err)
	}
}

func TestUpdateProductForeignListing(t *testing.T) {
	owner := uuid.New()
	product := &models.Product{ID: uuid.New(), SupplierID: owner, Name: "Widget", Price: dec(t, "10.00")}
	repo := &stubCatalogRepo{products: map[uuid.UUID]*models.Product{product.ID: product}}
	svc, _ := NewService(repo)

	name := "Hijacked"
	_, err := svc.UpdateProduct(context.Background(), uuid.New(), product.ID, UpdateProductInput{Name: &name})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign listing got %v", err)
	}
	if repo.products[product.ID].Name != "Widget" {
		t.Fatal("foreign update must not mutate the listing")
	}
}

func TestDeleteProductOwned(t *testing.T) {
	owner := uuid.New()
	product := &models.Product{ID: uuid.New(), SupplierID: owner, Price: dec(t, "1.00")}
	repo := &stubCatalogRepo{products: map[uuid.UUID]*models.Product{product.ID: product}}
	svc, _ := NewService(repo)

	if err := svc.DeleteProduct(context.Background(), owner, product.ID); err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != product.ID {
		t.Fatal("expected product deleted")
	}
}

func TestGetSupplierInactiveHidden(t *testing.T) {
	supplier := &models.Supplier{ID: uuid.New(), Name: "Dormant Co", IsActive: false}
	svc, _ := NewService(&stubCatalogRepo{supplier: supplier})

	_, err := svc.GetSupplier(context.Background(), supplier.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("inactive supplier must read as not found, got %v", err)
	}
}

func TestSetSupplierActive(t *testing.T) {
	supplier := &models.Supplier{ID: uuid.New(), IsActive: false}
	repo := &stubCatalogRepo{supplier: supplier}
	svc, _ := NewService(repo)

	if err := svc.SetSupplierActive(context.Background(), supplier.ID, true); err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if !repo.activeUpdates[supplier.ID] {
		t.Fatal("expected activation persisted")
	}

	err := svc.SetSupplierActive(context.Background(), uuid.New(), false)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found got %v", err)
	}
}

func TestCreateDealDiscountBounds(t *testing.T) {
	svc, _ := NewService(&stubCatalogRepo{})
	pct := dec(t, "150")
	_, err := svc.CreateDeal(context.Background(), uuid.New(), CreateDealInput{
		Title:           "Too good",
		DiscountPercent: &pct,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error got %v", err)
	}
}
