package pagination

// DefaultLimit is used when the requested limit is not positive.
const DefaultLimit = 20

// MaxLimit caps the page size; admin list endpoints accept user-supplied
// limits and must not be talked into unbounded result sets.
const MaxLimit = 100

// Page describes one page of a result set.
type Page struct {
	// Page is the normalized 1-based page number.
	Page int
	// Limit is the normalized page size.
	Limit int
	// Offset is the number of rows to skip: (Page-1)*Limit.
	Offset int
	// TotalItems is the total row count the page math was derived from.
	TotalItems int
	// TotalPages is ceil(TotalItems/Limit); zero when there are no items.
	TotalPages int
	// HasPrev reports whether a previous page exists.
	HasPrev bool
	// HasNext reports whether a further page exists.
	HasNext bool
}

// New computes page metadata from a total row count and the requested page
// and limit. Input is normalized: page < 1 becomes 1, limit < 1 becomes
// DefaultLimit, limit > MaxLimit becomes MaxLimit. A page past the end is
// kept as requested (it yields an empty page), so callers can detect
// out-of-range navigation via HasNext/TotalPages.
func New(total, page, limit int) Page {
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page < 1 {
		page = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Page{
		Page:       page,
		Limit:      limit,
		Offset:     (page - 1) * limit,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Window returns up to width consecutive page numbers centered on the
// current page and clamped to [1, TotalPages], for rendering a pagination
// strip. An empty result set yields an empty window.
func (p Page) Window(width int) []int {
	if width < 1 || p.TotalPages == 0 {
		return nil
	}
	if width > p.TotalPages {
		width = p.TotalPages
	}

	start := p.Page - width/2
	if start < 1 {
		start = 1
	}
	if start+width-1 > p.TotalPages {
		start = p.TotalPages - width + 1
	}

	pages := make([]int, width)
	for i := range pages {
		pages[i] = start + i
	}

	return pages
}
