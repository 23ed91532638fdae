// SPDX-License-Identifier: MIT
package dijkstra

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/transitcat/core"
)

// Router answers repeated point-to-point queries over one immutable graph.
//
// Each distinct source is solved once; its shortest-path tree is cached and
// reused by later queries from the same source. The graph must not be
// mutated after NewRouter, otherwise cached trees go stale.
// Router is safe for concurrent use.
type Router struct {
	g    *core.Graph
	opts []Option

	mu    sync.Mutex
	trees map[core.VertexID]*Tree
}

// NewRouter binds a Router to g. opts are applied to every Dijkstra run
// (Source is set per query and overrides any Source option).
func NewRouter(g *core.Graph, opts ...Option) (*Router, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Router{
		g:     g,
		opts:  opts,
		trees: make(map[core.VertexID]*Tree),
	}, nil
}

// Graph returns the graph the router was built over.
func (r *Router) Graph() *core.Graph { return r.g }

// BuildRoute returns the minimum-weight path from → to.
// It returns false if either vertex is unknown or to is unreachable.
func (r *Router) BuildRoute(from, to core.VertexID) (RouteInfo, bool) {
	if !r.g.HasVertex(from) || !r.g.HasVertex(to) {
		return RouteInfo{}, false
	}

	t, err := r.tree(from)
	if err != nil {
		log.Debug().Err(err).Int("source", int(from)).Msg("shortest path tree failed")
		return RouteInfo{}, false
	}

	return t.PathTo(to)
}

// CachedSources reports how many source trees are currently cached.
func (r *Router) CachedSources() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.trees)
}

// tree returns the cached tree for source, computing it on first use.
// The lock is held across the computation so that concurrent queries for
// the same source solve it once.
func (r *Router) tree(source core.VertexID) (*Tree, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.trees[source]; ok {
		return t, nil
	}

	opts := make([]Option, 0, len(r.opts)+1)
	opts = append(opts, r.opts...)
	opts = append(opts, Source(source))
	t, err := Dijkstra(r.g, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("source", int(source)).Int("cached", len(r.trees)+1).Msg("shortest path tree computed")
	r.trees[source] = t

	return t, nil
}
