package dto

// PageRequest carries caller-supplied pagination. Page is 0-based to match
// the offsets the admin UI sends. Sort is "field" or "field,desc".
type PageRequest struct {
	Page int    `form:"page" json:"page"`
	Size int    `form:"size" json:"size"`
	Sort string `form:"sort" json:"sort"`
}

const defaultPageSize = 20

// Normalize clamps the request to sane values
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	return p
}

// Offset returns the row offset for the page
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one page of results plus the total row count across all pages
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
}

// MapPage converts a page of one item type into another, keeping the
// pagination envelope intact
func MapPage[A, B any](p Page[A], f func(A) B) Page[B] {
	items := make([]B, 0, len(p.Items))
	for _, a := range p.Items {
		items = append(items, f(a))
	}
	return Page[B]{Items: items, TotalCount: p.TotalCount, Page: p.Page, Size: p.Size}
}
