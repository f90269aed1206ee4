package listview

import (
	"slices"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort is the presenter's view of the active sort: one column from the
// entity's fixed sortable set plus a direction.
type Sort struct {
	Column    string
	Direction Direction
}

// Comparator orders two entities by a single column. Negative means a before
// b, zero means equal rank (original order preserved by the stable sort).
type Comparator[T any] func(a, b T) int

// Columns enumerates the sortable columns of an entity and how to compare
// them. Columns absent from the map compare everything equal, so an unknown
// sortBy leaves the page in remote order rather than failing.
type Columns[T any] map[string]Comparator[T]

// Locale-aware collation for string columns. The collator buffers internally,
// so compares are serialized behind a mutex.
var (
	collMu sync.Mutex
	coll   = collate.New(language.English, collate.Loose)
)

func collateStrings(a, b string) int {
	collMu.Lock()
	defer collMu.Unlock()
	return coll.CompareString(a, b)
}

// StringColumn compares a string field with locale-aware ordering.
func StringColumn[T any](f func(T) string) Comparator[T] {
	return func(a, b T) int { return collateStrings(f(a), f(b)) }
}

// IntColumn compares an integer field numerically.
func IntColumn[T any](f func(T) int64) Comparator[T] {
	return func(a, b T) int {
		av, bv := f(a), f(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}

// TimeColumn compares a timestamp field chronologically.
func TimeColumn[T any](f func(T) time.Time) Comparator[T] {
	return func(a, b T) int { return f(a).Compare(f(b)) }
}

// BoolColumn compares a boolean field with false ordered before true.
func BoolColumn[T any](f func(T) bool) Comparator[T] {
	return IntColumn(func(t T) int64 {
		if f(t) {
			return 1
		}
		return 0
	})
}

// SortItems returns the page's items under the given sort. A nil sort returns
// the input untouched (remote ordering is authoritative); otherwise the result
// is a stably sorted copy, so ties keep their original relative order and the
// cached page is never reordered in place.
//
// Known limitation carried over from the product: the sort only reorders the
// current page, not the full remote result set, because sort is never
// forwarded to the source.
func SortItems[T any](items []T, s *Sort, cols Columns[T]) []T {
	if s == nil || len(items) < 2 {
		return items
	}
	cmp, ok := cols[s.Column]
	if !ok {
		return items
	}
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		r := cmp(a, b)
		if s.Direction == Desc {
			r = -r
		}
		return r
	})
	return out
}
