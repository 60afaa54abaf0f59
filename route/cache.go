package route

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/storepath/astar"
	"github.com/katalvlaran/storepath/gridgraph"
	"github.com/katalvlaran/storepath/planner"
)

// Cache memoizes Compose results. It is safe for concurrent use.
//
// Entries are keyed by grid version, entry cell, the ordered list of
// destination cells and the ordering options. Destination order is part of
// the key because nearest-neighbor ties are broken by input position.
// Grids without a version are never cached, since two of them cannot be
// told apart. Calls carrying PathOptions are never cached either: a search
// limit can turn a cached success into a failure, and hooks must see every
// expansion. Errors are never cached.
type Cache struct {
	entries *lru.Cache[string, cached]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// cached is the stop-type-independent part of a Route.
type cached struct {
	indices []int
	path    astar.Path
	legs    []Leg
}

// NewCache returns a Cache holding at most size routes.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, cached](size)
	if err != nil {
		return nil, fmt.Errorf("route: cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// ComposeCached behaves like Compose but consults c first. A nil c
// degrades to a plain Compose. The returned Route never aliases cached
// memory, so callers may modify it.
func ComposeCached[S planner.Stop](c *Cache, g *gridgraph.Grid, entry gridgraph.Cell, stops []S, opts ...Option) (*Route[S], error) {
	if c == nil || g == nil || g.Version() == "" {
		return Compose(g, entry, stops, opts...)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.PathOptions) > 0 {
		cfg.Logger.Debug("route cache bypassed", slog.Int("path_options", len(cfg.PathOptions)))
		return Compose(g, entry, stops, opts...)
	}

	key := cacheKey(g.Version(), entry, planner.Locations(stops), cfg)
	if hit, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		cfg.Logger.Debug("route cache hit", slog.String("version", g.Version()), slog.Int("stops", len(stops)))
		return rebuild(hit, stops), nil
	}
	c.misses.Add(1)
	cfg.Logger.Debug("route cache miss", slog.String("version", g.Version()), slog.Int("stops", len(stops)))

	r, err := Compose(g, entry, stops, opts...)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, cached{
		indices: append([]int(nil), r.Indices...),
		path:    append(astar.Path(nil), r.Path...),
		legs:    append([]Leg(nil), r.Legs...),
	})
	return r, nil
}

// Hits returns the number of lookups answered from the cache.
func (c *Cache) Hits() uint64 { return c.hits.Load() }

// Misses returns the number of lookups that had to compute.
func (c *Cache) Misses() uint64 { return c.misses.Load() }

// Len returns the number of cached routes.
func (c *Cache) Len() int { return c.entries.Len() }

// Purge drops every cached route, e.g. after a layout change that reused a version tag.
func (c *Cache) Purge() { c.entries.Purge() }

// rebuild materializes a Route for the caller's stops from a cached entry.
func rebuild[S planner.Stop](e cached, stops []S) *Route[S] {
	order := make([]S, len(e.indices))
	for k, i := range e.indices {
		order[k] = stops[i]
	}
	return &Route[S]{
		Order:   order,
		Indices: append([]int{}, e.indices...),
		Path:    append(astar.Path{}, e.path...),
		Legs:    append([]Leg{}, e.legs...),
	}
}

func cacheKey(version string, entry gridgraph.Cell, cells []gridgraph.Cell, cfg Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%d,%d|%s|%t|%d|", version, entry.X, entry.Z, cfg.Strategy, cfg.RoutedDistances, cfg.TwoOptMaxIters)
	for _, c := range cells {
		fmt.Fprintf(&b, "%d,%d;", c.X, c.Z)
	}
	return b.String()
}
