package search

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/angelmondragon/mercado-backend/pkg/pagination"
)

// minTermLength is the shortest search term worth hitting the store for.
// Shorter terms with no filters would degenerate into full table scans.
const minTermLength = 3

// Service runs the combined product/deal/supplier search.
type Service interface {
	Search(ctx context.Context, query Query) (*Result, error)
}

type service struct {
	repo Repository
}

// NewService builds the search service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("search repository required")
	}
	return &service{repo: repo}, nil
}

// Search executes the three entity queries independently and bundles the
// results. Trivial input (short term, no filters) short-circuits to an
// empty bundle without touching the store.
func (s *service) Search(ctx context.Context, query Query) (*Result, error) {
	query.Term = strings.TrimSpace(query.Term)
	query.Pagination = pagination.Normalize(query.Pagination)

	if utf8.RuneCountInString(query.Term) < minTermLength && query.Filters.Empty() {
		return &Result{
			Products: ProductPage{
				Items: []RankedProduct{},
				Meta:  pagination.NewMeta(query.Pagination, 0),
			},
			Deals:     []RankedDeal{},
			Suppliers: []RankedSupplier{},
		}, nil
	}

	products, err := s.repo.SearchProducts(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "product search")
	}

	deals, err := s.repo.SearchDeals(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deal search")
	}

	suppliers, err := s.repo.SearchSuppliers(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "supplier search")
	}

	if products.Items == nil {
		products.Items = []RankedProduct{}
	}
	if deals == nil {
		deals = []RankedDeal{}
	}
	if suppliers == nil {
		suppliers = []RankedSupplier{}
	}

	return &Result{
		Products:  *products,
		Deals:     deals,
		Suppliers: suppliers,
	}, nil
}
