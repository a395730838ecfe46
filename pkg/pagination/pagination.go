package pagination

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// DefaultPageSize is the page size used by every listing in the console.
const DefaultPageSize = 5

// Query holds the paging state for a single list request. Page is 0-based
// internally; the backend expects a 1-based page number, and WireValues is the
// only place that conversion happens.
type Query struct {
	Page   int
	Size   int
	Search string
}

func NewQuery() Query {
	return Query{Size: DefaultPageSize}
}

// FromContext extracts paging parameters from the console request. Missing or
// malformed values fall back to the first page at the default size.
func FromContext(c echo.Context) Query {
	q := NewQuery()

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page > 0 {
		q.Page = page
	}
	if size, err := strconv.Atoi(c.QueryParam("size")); err == nil && size > 0 {
		q.Size = size
	}
	q.Search = c.QueryParam("search")

	return q
}

// WirePage returns the 1-based page number sent to the backend.
func (q Query) WirePage() int {
	return q.Page + 1
}

// WireValues encodes the query for the backend list endpoints. An empty search
// term means no filter and is still sent, matching the backend convention.
func (q Query) WireValues() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.WirePage()))
	v.Set("searchKey", q.Search)
	v.Set("size", strconv.Itoa(q.Size))
	return v
}

// Result is the backend's paged list envelope.
type Result[T any] struct {
	Content    []T `json:"content"`
	TotalPages int `json:"totalPages"`
}

// Response wraps a paged list for the console's own JSON surface.
type Response[T any] struct {
	Content    []T    `json:"content"`
	TotalPages int    `json:"totalPages"`
	Page       int    `json:"page"`
	Search     string `json:"search"`
}

func NewResponse[T any](r Result[T], q Query) Response[T] {
	return Response[T]{
		Content:    r.Content,
		TotalPages: r.TotalPages,
		Page:       q.Page,
		Search:     q.Search,
	}
}
