// SPDX-License-Identifier: MIT
// Package dijkstra provides Dijkstra's shortest-path algorithm on
// core.Graph, with path reconstruction and a caching point-to-point Router.
//
// Overview:
//
//   - Dijkstra computes the shortest-path tree from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports distance caps and “impassable” edge thresholds.
//
// Determinism:
//
//   - The heap orders equal distances by vertex id, and an edge only replaces a
//     predecessor when it is strictly shorter. Together with core.Graph's
//     insertion-ordered adjacency, equal-cost alternatives always resolve to
//     the same path.
//
// Router:
//
//   - NewRouter(g) binds to an immutable graph; BuildRoute(from, to) solves the
//     tree for from on first use and caches it, so repeated queries from the
//     same source cost O(path length).
//   - Unknown vertices and unreachable targets are reported with ok == false.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  source vertex out of range.
//   - ErrNegativeWeight:  a negative edge weight (detected by a fast O(E) pre-scan).
//   - ErrBadMaxDistance:  WithMaxDistance(x) with x < 0 (panics in the option constructor).
//   - ErrBadInfThreshold: WithInfEdgeThreshold(t) with t ≤ 0 (panics in the option constructor).
//
// Example:
//
//	tree, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, ok := tree.PathTo(3)
package dijkstra
