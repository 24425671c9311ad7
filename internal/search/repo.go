package search

import (
	"context"
	"strings"

	"github.com/angelmondragon/mercado-backend/pkg/pagination"
	"gorm.io/gorm"
)

const (
	// similarityThreshold is the trigram floor for the fuzzy fallback.
	// Deliberately low: it only decides membership, never ranking.
	similarityThreshold = 0.1

	// previewLimit caps deal and supplier result sets. They are secondary
	// preview collections in a combined response, not paginated lists.
	previewLimit = 10
)

// Repository executes the per-entity ranked queries.
type Repository interface {
	SearchProducts(ctx context.Context, query Query) (*ProductPage, error)
	SearchDeals(ctx context.Context, query Query) ([]RankedDeal, error)
	SearchSuppliers(ctx context.Context, query Query) ([]RankedSupplier, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a search repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// productPredicates applies the WHERE clause shared by the product data
// and count queries. Both queries must go through here; diverging
// predicates would corrupt the pagination metadata.
func (r *repository) productPredicates(ctx context.Context, query Query) *gorm.DB {
	qb := r.db.WithContext(ctx).
		Table("products p").
		Joins("JOIN suppliers s ON s.id = p.supplier_id").
		Where("s.is_active = ?", true)

	filters := query.Filters
	if filters.Category != nil {
		qb = qb.Where("p.category = ?", *filters.Category)
	}
	if filters.SupplierID != nil {
		qb = qb.Where("p.supplier_id = ?", *filters.SupplierID)
	}
	if filters.MinPrice != nil {
		qb = qb.Where("p.price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		qb = qb.Where("p.price <= ?", *filters.MaxPrice)
	}

	if term := strings.TrimSpace(query.Term); term != "" {
		qb = qb.Where(
			"(p.search_vector @@ plainto_tsquery('english', ?) OR similarity(p.name, ?) > ?)",
			term, term, similarityThreshold,
		)
	}
	return qb
}

func (r *repository) SearchProducts(ctx context.Context, query Query) (*ProductPage, error) {
	params := pagination.Normalize(query.Pagination)

	var total int64
	if err := r.productPredicates(ctx, query).Count(&total).Error; err != nil {
		return nil, err
	}

	qb := r.productPredicates(ctx, query)

	baseColumns := "p.id, p.supplier_id, p.name, p.description, p.category, " +
		"p.price, p.discount_price, p.is_on_sale, p.image_url, p.created_at"

	if term := strings.TrimSpace(query.Term); term != "" {
		qb = qb.Select(baseColumns+`,
			CASE WHEN p.search_vector @@ plainto_tsquery('english', ?) THEN 0 ELSE 1 END AS match_tier,
			ts_rank(p.search_vector, plainto_tsquery('english', ?)) AS rank_score,
			similarity(p.name, ?) AS similarity`,
			term, term, term).
			Order("match_tier ASC, rank_score DESC, similarity DESC, p.created_at DESC")
	} else {
		qb = qb.Select(baseColumns).
			Order("p.created_at DESC")
	}

	var items []RankedProduct
	err := qb.Limit(params.Limit).
		Offset(params.Offset()).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Items: items,
		Meta:  pagination.NewMeta(params, total),
	}, nil
}

func (r *repository) SearchDeals(ctx context.Context, query Query) ([]RankedDeal, error) {
	qb := r.db.WithContext(ctx).
		Table("deals d").
		Joins("LEFT JOIN suppliers s ON s.id = d.supplier_id").
		Where("(d.supplier_id IS NULL OR s.is_active = ?)", true)

	if query.Filters.Category != nil {
		qb = qb.Where("d.category = ?", *query.Filters.Category)
	}
	if query.Filters.SupplierID != nil {
		qb = qb.Where("d.supplier_id = ?", *query.Filters.SupplierID)
	}

	baseColumns := "d.id, d.supplier_id, d.title, d.description, d.category, " +
		"d.discount_percent, d.created_at"

	if term := strings.TrimSpace(query.Term); term != "" {
		qb = qb.Where(
			"(d.search_vector @@ plainto_tsquery('english', ?) OR similarity(d.title, ?) > ?)",
			term, term, similarityThreshold,
		).Select(baseColumns+`,
			CASE WHEN d.search_vector @@ plainto_tsquery('english', ?) THEN 0 ELSE 1 END AS match_tier,
			ts_rank(d.search_vector, plainto_tsquery('english', ?)) AS rank_score,
			similarity(d.title, ?) AS similarity`,
			term, term, term).
			Order("match_tier ASC, rank_score DESC, similarity DESC, d.created_at DESC")
	} else {
		qb = qb.Select(baseColumns).
			Order("d.created_at DESC")
	}

	var items []RankedDeal
	if err := qb.Limit(previewLimit).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) SearchSuppliers(ctx context.Context, query Query) ([]RankedSupplier, error) {
	qb := r.db.WithContext(ctx).
		Table("suppliers s").
		Where("s.is_active = ?", true)

	if query.Filters.SupplierID != nil {
		qb = qb.Where("s.id = ?", *query.Filters.SupplierID)
	}

	baseColumns := "s.id, s.name, s.description, s.logo_url, s.created_at"

	if term := strings.TrimSpace(query.Term); term != "" {
		qb = qb.Where(
			"(s.search_vector @@ plainto_tsquery('english', ?) OR similarity(s.name, ?) > ?)",
			term, term, similarityThreshold,
		).Select(baseColumns+`,
			CASE WHEN s.search_vector @@ plainto_tsquery('english', ?) THEN 0 ELSE 1 END AS match_tier,
			ts_rank(s.search_vector, plainto_tsquery('english', ?)) AS rank_score,
			similarity(s.name, ?) AS similarity`,
			term, term, term).
			Order("match_tier ASC, rank_score DESC, similarity DESC, s.created_at DESC")
	} else {
		qb = qb.Select(baseColumns).
			Order("s.created_at DESC")
	}

	var items []RankedSupplier
	if err := qb.Limit(previewLimit).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
