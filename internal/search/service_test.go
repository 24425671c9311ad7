package search

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/angelmondragon/mercado-backend/pkg/pagination"
	"github.com/google/uuid"
)

type stubSearchRepo struct {
	productCalls  int
	dealCalls     int
	supplierCalls int
	lastQuery     Query
	products      *ProductPage
	deals         []RankedDeal
	suppliers     []RankedSupplier
	productErr    error
}

func (s *stubSearchRepo) SearchProducts(ctx context.Context, query Query) (*ProductPage, error) {
	s.productCalls++
	s.lastQuery = query
	if s.productErr != nil {
		return nil, s.productErr
	}
	if s.products != nil {
		return s.products, nil
	}
	return &ProductPage{Items: []RankedProduct{}, Meta: pagination.NewMeta(query.Pagination, 0)}, nil
}

func (s *stubSearchRepo) SearchDeals(ctx context.Context, query Query) ([]RankedDeal, error) {
	s.dealCalls++
	return s.deals, nil
}

func (s *stubSearchRepo) SearchSuppliers(ctx context.Context, query Query) ([]RankedSupplier, error) {
	s.supplierCalls++
	return s.suppliers, nil
}

func TestSearchShortCircuit(t *testing.T) {
	repo := &stubSearchRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("service constructor failed: %v", err)
	}

	result, err := svc.Search(context.Background(), Query{Term: " ab "})
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if repo.productCalls != 0 || repo.dealCalls != 0 || repo.supplierCalls != 0 {
		t.Fatal("short-circuit must not touch the store")
	}
	if len(result.Products.Items) != 0 || len(result.Deals) != 0 || len(result.Suppliers) != 0 {
		t.Fatal("short-circuit must return empty collections")
	}
	if result.Products.Meta.TotalItems != 0 || result.Products.Meta.TotalPages != 0 {
		t.Fatalf("unexpected pagination meta %+v", result.Products.Meta)
	}
}

func TestSearchFilterBypassesShortCircuit(t *testing.T) {
	category := "Electronics"
	repo := &stubSearchRepo{}
	svc, _ := NewService(repo)

	_, err := svc.Search(context.Background(), Query{
		Term:    "",
		Filters: Filters{Category: &category},
	})
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if repo.productCalls != 1 || repo.dealCalls != 1 || repo.supplierCalls != 1 {
		t.Fatal("a set filter must bypass the short-circuit")
	}
}

func TestSearchTrimsTermAndNormalizesPagination(t *testing.T) {
	repo := &stubSearchRepo{}
	svc, _ := NewService(repo)

	_, err := svc.Search(context.Background(), Query{
		Term:       "  widget  ",
		Pagination: pagination.Params{Page: 0, Limit: 0},
	})
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if repo.lastQuery.Term != "widget" {
		t.Fatalf("expected trimmed term got %q", repo.lastQuery.Term)
	}
	if repo.lastQuery.Pagination.Page != 1 || repo.lastQuery.Pagination.Limit != pagination.DefaultLimit {
		t.Fatalf("expected normalized pagination got %+v", repo.lastQuery.Pagination)
	}
}

func TestSearchBundlesAllEntitySets(t *testing.T) {
	supplierID := uuid.New()
	repo := &stubSearchRepo{
		products: &ProductPage{
			Items: []RankedProduct{{ID: uuid.New(), Name: "Widget", MatchTier: MatchTierExact}},
			Meta:  pagination.Meta{Page: 1, Limit: 20, TotalItems: 1, TotalPages: 1},
		},
		deals:     []RankedDeal{{ID: uuid.New(), Title: "Widget week", MatchTier: MatchTierFuzzy}},
		suppliers: []RankedSupplier{{ID: supplierID, Name: "Widget Co"}},
	}
	svc, _ := NewService(repo)

	result, err := svc.Search(context.Background(), Query{Term: "widget"})
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if len(result.Products.Items) != 1 || result.Products.Meta.TotalItems != 1 {
		t.Fatalf("unexpected product page %+v", result.Products)
	}
	if len(result.Deals) != 1 || len(result.Suppliers) != 1 {
		t.Fatal("expected deal and supplier previews")
	}
	if result.Suppliers[0].ID != supplierID {
		t.Fatal("supplier set must pass through unchanged")
	}
}

func TestSearchNilSlicesBecomeEmpty(t *testing.T) {
	repo := &stubSearchRepo{}
	svc, _ := NewService(repo)

	result, err := svc.Search(context.Background(), Query{Term: "widget"})
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if result.Deals == nil || result.Suppliers == nil {
		t.Fatal("nil result sets must serialize as empty arrays")
	}
}

func TestSearchStoreFailure(t *testing.T) {
	repo := &stubSearchRepo{productErr: errors.New("connection reset")}
	svc, _ := NewService(repo)

	_, err := svc.Search(context.Background(), Query{Term: "widget"})
	if err == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error got %v", err)
	}
}
