package pagination

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedSort  = errors.New("unsupported sort field")
	ErrInvalidPageSize  = errors.New("page size must be positive")
	ErrInvalidPageIndex = errors.New("page index must not be negative")
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sortable product fields. Listings reject anything outside this set rather
// than silently falling back to a default order.
const (
	SortTitle      = "title"
	SortAge        = "age"
	SortPrice      = "price"
	SortDistillery = "distillery"
)

var allowedSorts = map[string]struct{}{
	SortTitle:      {},
	SortAge:        {},
	SortPrice:      {},
	SortDistillery: {},
}

// PageRequest is a normalized pagination descriptor: validated sort field and
// direction plus a zero-based page index and page size.
type PageRequest struct {
	Sort      string
	Direction Direction
	Page      int
	Size      int
}

// Offset returns the row offset of the first element of the page.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Resolve normalizes raw listing parameters into a PageRequest. Empty sort
// and direction fall back to title ascending; size must already carry the
// configured default when the request omitted it.
func Resolve(sort, direction string, page, size int) (PageRequest, error) {
	if sort == "" {
		sort = SortTitle
	}
	if _, ok := allowedSorts[sort]; !ok {
		return PageRequest{}, fmt.Errorf("%w: %q", ErrUnsupportedSort, sort)
	}

	dir := Asc
	switch direction {
	case "", string(Asc):
	case string(Desc):
		dir = Desc
	default:
		return PageRequest{}, fmt.Errorf("%w: unknown direction %q", ErrUnsupportedSort, direction)
	}

	if page < 0 {
		return PageRequest{}, ErrInvalidPageIndex
	}
	if size <= 0 {
		return PageRequest{}, ErrInvalidPageSize
	}

	return PageRequest{
		Sort:      sort,
		Direction: dir,
		Page:      page,
		Size:      size,
	}, nil
}

// Page is a bounded, ordered slice of a larger result set plus pagination
// metadata. A page index past the end carries empty content with the totals
// still populated.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage assembles a Page from one slice of content and the overall total.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
