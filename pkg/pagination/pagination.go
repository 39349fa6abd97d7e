package pagination

// SearchQuery carries the paging, filtering and sorting parameters accepted by
// every aggregate gateway's FindAll.
type SearchQuery struct {
	Page      int
	PerPage   int
	Terms     string
	Sort      string
	Direction string
}

// NewSearchQuery creates a search query.
func NewSearchQuery(page, perPage int, terms, sort, direction string) SearchQuery {
	return SearchQuery{
		Page:      page,
		PerPage:   perPage,
		Terms:     terms,
		Sort:      sort,
		Direction: direction,
	}
}

// Page is one page of results returned by a gateway.
type Page[T any] struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	Items       []T   `json:"items"`
}

// NewPage creates a page of results.
func NewPage[T any](currentPage, perPage int, total int64, items []T) Page[T] {
	return Page[T]{
		CurrentPage: currentPage,
		PerPage:     perPage,
		Total:       total,
		Items:       items,
	}
}

// Map projects a page's items through fn, keeping the paging metadata.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[R]{
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
		Items:       items,
	}
}
