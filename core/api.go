// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Vertex set is fixed at construction, so vertex queries need no lock.

package core

// GraphStats is a read-only snapshot of configuration flags and sizes.
type GraphStats struct {
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	// ZeroSpanEdgeCount counts edges with Span == 0 (wait edges in a transit graph).
	ZeroSpanEdgeCount int
	// TotalWeight is the sum of all edge weights.
	TotalWeight float64
}

// VertexCount returns the number of vertices fixed at construction.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// HasVertex reports whether v is a valid vertex id of g.
// Complexity: O(1).
func (g *Graph) HasVertex(v VertexID) bool {
	return v >= 0 && int(v) < g.vertexCount
}

// Looped reports whether self-loops (from==to) are permitted by policy.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Stats produces a deterministic snapshot of flags and counts.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock and scan edges once.
//   - Stage 2: Return the populated value.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsLoops: g.allowLoops,
		VertexCount: g.vertexCount,
		EdgeCount:   len(g.edges),
	}
	for i := range g.edges {
		if g.edges[i].Span == 0 {
			stats.ZeroSpanEdgeCount++
		}
		stats.TotalWeight += g.edges[i].Weight
	}

	return stats
}
