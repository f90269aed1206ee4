package listview

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Page is one fetched, bounded slice of an entity collection. Total reflects
// the unfiltered remote total, not the slice length. Pages are immutable once
// fetched; a newer fetch supersedes, never mutates.
type Page[T any] struct {
	Items []T
	Total int
}

// Source is the remote list endpoint a controller fetches from. Sort state is
// never forwarded: a source only ever sees the skip/limit window.
// Implementations must be safe for concurrent use.
type Source[T any] interface {
	FetchPage(ctx context.Context, skip, limit int) (Page[T], error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc[T any] func(ctx context.Context, skip, limit int) (Page[T], error)

func (f SourceFunc[T]) FetchPage(ctx context.Context, skip, limit int) (Page[T], error) {
	return f(ctx, skip, limit)
}

// Reporter receives remote failures for user-visible presentation. The
// controller decides when to report, never how the notification renders.
type Reporter interface {
	ReportError(kind, message string)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(kind, message string)

func (f ReporterFunc) ReportError(kind, message string) { f(kind, message) }

// ErrorKindRemote tags network/remote failures handed to the Reporter.
const ErrorKindRemote = "remote_error"

// State is the list view's lifecycle phase. Loading is re-entered from
// Success or Error on every query mutation; there is no terminal state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// View is what a list view renders: the page's items under the active sort,
// plus enough metadata to drive pagination controls and staleness styling.
type View[T any] struct {
	Items []T
	Total int
	Query Query
	State State
	// Stale marks items carried over from an earlier query because the
	// current one has not resolved successfully yet.
	Stale bool
	// Empty requests the empty-state affordance instead of a bare table.
	Empty bool
}

// Env bundles the collaborators shared by every controller in the process.
type Env struct {
	Invalidator *Invalidator
	Reporter    Reporter
	Logger      zerolog.Logger
	// CacheTTL bounds how long a cached page may serve between
	// invalidations. Zero keeps pages until explicitly invalidated.
	CacheTTL time.Duration
}

// Controller is the generic list-view data controller: it owns the search
// state, a page cache for its entity, and the last successfully fetched page.
// One instance serves an entity's list route for the process lifetime and is
// safe for concurrent use.
type Controller[T any] struct {
	entity string
	src    Source[T]
	cols   Columns[T]
	cache  *pageCache[T]
	rep    Reporter
	log    zerolog.Logger

	mu    sync.Mutex
	seq   uint64 // identity of the most recently issued load
	query Query  // latest query; only Set*/Load may move it
	state State
	last  []T // last-known-good items, in source order
	total int
	lastQ Query // query the last-known-good page belongs to
	has   bool
}

// NewController wires a controller for one entity type and registers its
// cache with the environment's invalidator.
func NewController[T any](entity string, src Source[T], cols Columns[T], env Env) *Controller[T] {
	rep := env.Reporter
	if rep == nil {
		rep = ReporterFunc(func(string, string) {})
	}
	c := &Controller[T]{
		entity: entity,
		src:    src,
		cols:   cols,
		cache:  newPageCache[T](env.CacheTTL),
		rep:    rep,
		log:    env.Logger.With().Str("component", "listview").Str("entity", entity).Logger(),
		query:  DefaultQuery(),
		state:  StateIdle,
	}
	if env.Invalidator != nil {
		env.Invalidator.Register(entity, c.cache)
	}
	return c
}

// Entity returns the entity name the controller serves.
func (c *Controller[T]) Entity() string { return c.entity }

// Query returns the current search state.
func (c *Controller[T]) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SetPage, SetPageSize and SetSort are the only operations that move the
// owned search state; each returns the query a follow-up Load should use.

func (c *Controller[T]) SetPage(n int) Query { return c.update(func(q Query) Query { return q.WithPage(n) }) }

func (c *Controller[T]) SetPageSize(n int) Query {
	return c.update(func(q Query) Query { return q.WithPageSize(n) })
}

func (c *Controller[T]) SetSort(col string) Query {
	return c.update(func(q Query) Query { return q.WithSort(col) })
}

func (c *Controller[T]) update(f func(Query) Query) Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = f(c.query)
	return c.query
}

// Load resolves the given query to a view: cache hit or remote fetch (with at
// most one retry), then client-side sort. The query becomes the controller's
// current state.
//
// Ordering guarantee: if a newer Load is issued before this one resolves, the
// shared snapshot keeps the newer result; a superseded response is discarded
// on arrival rather than cancelled, since fetches are idempotent reads. The
// caller still receives its own result either way.
//
// On remote failure the last-known-good page is retained and returned marked
// stale, the failure goes to the Reporter, and a non-nil error tells the
// caller no fresh data exists for q.
func (c *Controller[T]) Load(ctx context.Context, q Query) (View[T], error) {
	c.mu.Lock()
	c.seq++
	my := c.seq
	c.query = q
	c.state = StateLoading
	c.mu.Unlock()

	page, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		if my == c.seq {
			c.state = StateError
		}
		c.log.Error().Err(err).Int("page", q.Page).Int("page_size", q.PageSize).Msg("list fetch failed")
		c.rep.ReportError(ErrorKindRemote, fmt.Sprintf("failed to load %s: %v", c.entity, err))
		return c.viewLocked(q), err
	}
	if my == c.seq {
		c.state = StateSuccess
		c.last = page.Items
		c.total = page.Total
		c.lastQ = q
		c.has = true
	}
	return View[T]{
		Items: SortItems(page.Items, q.Sort(), c.cols),
		Total: page.Total,
		Query: q,
		State: StateSuccess,
		Empty: len(page.Items) == 0,
	}, nil
}

// Refresh re-resolves the current query, e.g. after an invalidation.
func (c *Controller[T]) Refresh(ctx context.Context) (View[T], error) {
	return c.Load(ctx, c.Query())
}

// Snapshot renders the current shared state without fetching: the last-known-
// good page presented under the current query's sort. Used by views that keep
// stale data visible while a newer load is in flight or has failed.
func (c *Controller[T]) Snapshot() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked(c.query)
}

// viewLocked presents the retained page under q. Callers hold c.mu.
func (c *Controller[T]) viewLocked(q Query) View[T] {
	return View[T]{
		Items: SortItems(c.last, q.Sort(), c.cols),
		Total: c.total,
		Query: q,
		State: c.state,
		Stale: c.has && c.lastQ != q,
		Empty: c.has && len(c.last) == 0,
	}
}

// fetch serves a page from cache or the source. Exactly one remote window
// exists per distinct (page, pageSize); sort never reaches the source. A
// failed fetch is retried once before giving up.
func (c *Controller[T]) fetch(ctx context.Context, q Query) (Page[T], error) {
	k := pageKey{Skip: q.Skip(), Limit: q.Limit()}
	if p, ok := c.cache.get(k); ok {
		return p, nil
	}
	p, err := c.src.FetchPage(ctx, k.Skip, k.Limit)
	if err != nil && ctx.Err() == nil {
		c.log.Warn().Err(err).Msg("retrying list fetch")
		p, err = c.src.FetchPage(ctx, k.Skip, k.Limit)
	}
	if err != nil {
		return Page[T]{}, err
	}
	c.cache.put(k, p)
	return p, nil
}

// CacheStats exposes cache counters for diagnostics.
func (c *Controller[T]) CacheStats() CacheStats { return c.cache.Stats() }
