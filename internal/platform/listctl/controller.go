// Package listctl implements the paging state machine behind every listing in
// the console: a 0-based page, a fixed page size, and a search term split into
// a draft (what the user is typing) and a committed value (what the current
// results were fetched with).
package listctl

import (
	"context"
	"sync"

	"github.com/imagems/console/pkg/pagination"
)

// Fetcher loads one page of results for the given query.
type Fetcher[T any] func(ctx context.Context, q pagination.Query) (pagination.Result[T], error)

// Controller drives a paginated listing. Concurrent refreshes are allowed;
// when two fetches overlap, the one started last wins and a stale response is
// discarded.
type Controller[T any] struct {
	mu sync.Mutex

	fetch    Fetcher[T]
	pageSize int

	page            int
	draftSearch     string
	committedSearch string

	content    []T
	totalPages int
	seq        uint64
	applied    uint64
}

func New[T any](fetch Fetcher[T], pageSize int) *Controller[T] {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return &Controller[T]{fetch: fetch, pageSize: pageSize}
}

// Restore seeds the controller from externally held state, e.g. the page and
// search carried in a console request's query string.
func (c *Controller[T]) Restore(page int, search string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 0 {
		page = 0
	}
	c.page = page
	c.draftSearch = search
	c.committedSearch = search
}

// SetDraft updates the search box contents. Clearing the box propagates to
// the committed search immediately, without a submit; committing a non-empty
// term requires SubmitSearch. The asymmetry is deliberate.
func (c *Controller[T]) SetDraft(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draftSearch = s
	if s == "" {
		c.committedSearch = ""
	}
}

// SubmitSearch commits the draft and rewinds to the first page, so a new
// search can never show a stale out-of-range page.
func (c *Controller[T]) SubmitSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.committedSearch = c.draftSearch
	c.page = 0
}

// SetPage moves to the given page, leaving the search untouched. Once a total
// is known the page is clamped into [0, totalPages).
func (c *Controller[T]) SetPage(p int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p < 0 {
		p = 0
	}
	if c.totalPages > 0 && p >= c.totalPages {
		p = c.totalPages - 1
	}
	c.page = p
}

// Query snapshots the current committed query.
func (c *Controller[T]) Query() pagination.Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query()
}

func (c *Controller[T]) query() pagination.Query {
	return pagination.Query{Page: c.page, Size: c.pageSize, Search: c.committedSearch}
}

// Refresh issues exactly one fetch for the current query and replaces the
// displayed content wholesale. A response superseded by a later Refresh is
// dropped (last write wins).
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	q := c.query()
	c.mu.Unlock()

	res, err := c.fetch(ctx, q)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.applied {
		return nil
	}
	c.applied = seq
	c.content = res.Content
	c.totalPages = res.TotalPages
	return nil
}

// Content returns the currently displayed rows.
func (c *Controller[T]) Content() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

// TotalPages returns the page count reported by the last applied fetch.
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

// Page returns the current 0-based page.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// CommittedSearch returns the search term the current results belong to.
func (c *Controller[T]) CommittedSearch() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.committedSearch
}
