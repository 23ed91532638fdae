// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties are broken by vertex id (heap order) and edge insertion order (strict-less relaxation),
//     so equal-cost alternatives always resolve to the same path.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/transitcat/core"
)

// noVertex marks the absence of a predecessor vertex.
const noVertex core.VertexID = -1

// Dijkstra computes the shortest-path tree rooted at Options.Source over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain Source (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Tree, error) {
	// 1) Build Options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate Source exists in the graph
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 4) Pre-scan all edges to detect negative weights. core rejects them on
	//    insertion, so this only trips on a graph built by other means.
	for id, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d (%d→%d) weight=%v", ErrNegativeWeight, id, e.From, e.To, e.Weight)
		}
	}

	// 5) Prepare data structures for the algorithm.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		tree: &Tree{
			Source:   cfg.Source,
			Dist:     make([]float64, V),
			PrevEdge: make([]core.EdgeID, V),
			prev:     make([]core.VertexID, V),
		},
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 6) Initialize algorithm state and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.tree, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options (Source, thresholds).
	tree    *Tree       // Distances and predecessors being filled in.
	visited []bool      // Tracks if a vertex's distance is finalized.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = +∞ for every vertex and pushes Source=0 into the heap.
func (r *runner) init() {
	t := r.tree
	for v := range t.Dist {
		t.Dist[v] = math.Inf(1)
		t.PrevEdge[v] = core.NoEdge
		t.prev[v] = noVertex
	}
	t.Dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the vertex with the minimum distance from the
// source and relaxes its outgoing edges, until the heap is empty or the
// minimum exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u, in insertion order, and improves
// distances to its heads. Only strictly shorter paths replace a predecessor.
func (r *runner) relax(u core.VertexID) error {
	ids, edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	t := r.tree
	for i, e := range edges {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d (%d→%d) weight=%v", ErrNegativeWeight, ids[i], u, e.To, e.Weight)
		}

		newDist := t.Dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= t.Dist[e.To] {
			continue
		}

		t.Dist[e.To] = newDist
		t.PrevEdge[e.To] = ids[i]
		t.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// Reachable reports whether v has a finite distance in the tree.
func (t *Tree) Reachable(v core.VertexID) bool {
	return v >= 0 && int(v) < len(t.Dist) && !math.IsInf(t.Dist[v], 1)
}

// PathTo reconstructs the shortest path from the tree's source to target.
// It returns false when target is out of range or unreachable. The path to
// the source itself is empty with weight 0.
// Complexity: O(path length).
func (t *Tree) PathTo(target core.VertexID) (RouteInfo, bool) {
	if !t.Reachable(target) {
		return RouteInfo{}, false
	}

	var edges []core.EdgeID
	for v := target; v != t.Source; v = t.prev[v] {
		edges = append(edges, t.PrevEdge[v])
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return RouteInfo{Edges: edges, Weight: t.Dist[target]}, true
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   core.VertexID // vertex
	dist float64       // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by vertex id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller dist; equal distances expand the lowest vertex id first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
