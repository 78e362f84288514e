package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultPerPage is used when the caller does not ask for a page size.
	DefaultPerPage = 15
	// MaxPerPage caps page_size from the query string.
	MaxPerPage = 100

	pageParam = "page"
)

// PaginationParams represents input parameters for pagination
type PaginationParams struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"page_size" json:"page_size"`
}

// DefaultPagination returns default pagination values
func DefaultPagination() *PaginationParams {
	return &PaginationParams{
		Page:    1,
		PerPage: DefaultPerPage,
	}
}

// Validate ensures pagination parameters are within valid ranges
func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
}

// Offset calculates the offset for SQL queries
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Page is one page of a list endpoint, with links to its neighbours.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPage builds a page. base is the URL of the current request; nil leaves
// next/previous empty.
func NewPage[T any](items []T, params *PaginationParams, total int64, base *url.URL) *Page[T] {
	if items == nil {
		items = []T{}
	}
	page := &Page[T]{
		Count:   total,
		Results: items,
	}
	if base == nil {
		return page
	}
	if int64(params.Page*params.PerPage) < total {
		next := pageURL(base, params.Page+1)
		page.Next = &next
	}
	if params.Page > 1 {
		prev := pageURL(base, params.Page-1)
		page.Previous = &prev
	}
	return page
}

func pageURL(base *url.URL, page int) string {
	u := *base
	q := u.Query()
	if page <= 1 {
		q.Del(pageParam)
	} else {
		q.Set(pageParam, strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.String()
}
