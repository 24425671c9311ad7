package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 20
	// MaxLimit caps how many rows any page query can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// Normalize enforces a positive page number and the configured limits.
func Normalize(p Params) Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset for the normalized params.
func (p Params) Offset() int {
	page := p.Page
	if page <= 0 {
		page = 1
	}
	return (page - 1) * p.Limit
}

// Meta describes one page of an offset-paginated collection. TotalItems
// must come from a count query sharing the data query's predicates.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewMeta computes page metadata; TotalPages is ceil(totalItems / limit).
func NewMeta(p Params, totalItems int64) Meta {
	p = Normalize(p)
	totalPages := int((totalItems + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
