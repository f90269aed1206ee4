// Package listview implements the generic paginated, sortable list-view
// controller shared by every entity list in the API: query state bound to URL
// parameters, a cached page fetcher with last-request-wins semantics, and a
// client-side stable-sort presenter over the fetched page.
package listview

import (
	"net/url"
	"strconv"
)

// Direction is the sort order applied by the presenter.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Defaults applied whenever URL state is absent or malformed.
// Malformed values are replaced, never rejected: a bad bookmark should still
// land the user on a working first page.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// allowedPageSizes is the fixed set of page sizes the UI offers.
var allowedPageSizes = []int{5, 10, 25, 50, 100}

// URL parameter names. These are the public wire contract for list views.
const (
	paramPage     = "page"
	paramPageSize = "pageSize"
	paramSortBy   = "sortBy"
	paramSortDir  = "sortDirection"
)

// Query is the full search state of a list view. It is a comparable value
// type: query identity (==) is what the controller uses to decide whether an
// in-flight response is still current.
//
// Invariants: Page >= 1, PageSize is one of allowedPageSizes, and SortDir is
// set iff SortBy is set. Construct via ParseQuery or the With* methods; the
// zero value is not a valid Query.
type Query struct {
	Page     int
	PageSize int
	SortBy   string
	SortDir  Direction
}

// DefaultQuery returns the documented default state: first page, default page
// size, remote ordering untouched.
func DefaultQuery() Query {
	return Query{Page: DefaultPage, PageSize: DefaultPageSize}
}

// ParseQuery builds a Query from URL parameters, substituting defaults for
// anything missing or malformed. It never fails; invalid URL state is a
// recoverable condition, not an error surfaced to the user.
func ParseQuery(v url.Values) Query {
	q := DefaultQuery()

	if n, err := strconv.Atoi(v.Get(paramPage)); err == nil && n >= 1 {
		q.Page = n
	}
	if n, err := strconv.Atoi(v.Get(paramPageSize)); err == nil && validPageSize(n) {
		q.PageSize = n
	}

	// Direction without a column is meaningless; a column with a bad or
	// missing direction falls back to ascending.
	if col := v.Get(paramSortBy); col != "" {
		q.SortBy = col
		q.SortDir = Asc
		if d := Direction(v.Get(paramSortDir)); d == Asc || d == Desc {
			q.SortDir = d
		}
	}
	return q
}

// Encode serializes the query back to URL parameters. ParseQuery(q.Encode())
// always yields q again, so list positions are shareable and bookmarkable.
func (q Query) Encode() url.Values {
	v := url.Values{}
	v.Set(paramPage, strconv.Itoa(q.Page))
	v.Set(paramPageSize, strconv.Itoa(q.PageSize))
	if q.SortBy != "" {
		v.Set(paramSortBy, q.SortBy)
		v.Set(paramSortDir, string(q.SortDir))
	}
	return v
}

// Skip is the number of records to skip at the remote source.
func (q Query) Skip() int { return (q.Page - 1) * q.PageSize }

// Limit is the page size requested from the remote source.
func (q Query) Limit() int { return q.PageSize }

// Sort returns the presenter's view of the query, or nil when the remote
// ordering should be preserved.
func (q Query) Sort() *Sort {
	if q.SortBy == "" {
		return nil
	}
	return &Sort{Column: q.SortBy, Direction: q.SortDir}
}

// WithPage moves to page n. Values below 1 clamp to the first page.
func (q Query) WithPage(n int) Query {
	if n < 1 {
		n = 1
	}
	q.Page = n
	return q
}

// WithPageSize switches the page size and resets to page 1: offsets computed
// under the old size are meaningless under the new one. Sizes outside the
// allowed set fall back to the default.
func (q Query) WithPageSize(n int) Query {
	if !validPageSize(n) {
		n = DefaultPageSize
	}
	q.PageSize = n
	q.Page = 1
	return q
}

// WithSort sorts by col ascending, or toggles the direction when col is
// already the active sort column.
func (q Query) WithSort(col string) Query {
	if q.SortBy == col {
		if q.SortDir == Asc {
			q.SortDir = Desc
		} else {
			q.SortDir = Asc
		}
		return q
	}
	q.SortBy = col
	q.SortDir = Asc
	return q
}

func validPageSize(n int) bool {
	for _, s := range allowedPageSizes {
		if n == s {
			return true
		}
	}
	return false
}
