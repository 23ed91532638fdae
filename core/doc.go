// SPDX-License-Identifier: MIT
// Package core provides the in-memory directed weighted graph consumed by
// the shortest-path engine.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Dense vertex ids: V is fixed at construction as [0, n).
//   - Append-only edges: AddEdge assigns ids 0, 1, 2, … in insertion order.
//   - Float weights: finite and non-negative (ErrBadWeight otherwise).
//   - Edge metadata: Name and Span travel with every edge so that a path of
//     edge ids can be mapped back to domain segments without side tables.
//   - Deterministic iteration: OutEdges/Neighbors/Edges preserve insertion
//     order, which is what makes shortest-path tie-breaking reproducible.
//   - A single sync.RWMutex guards edges and adjacency, so concurrent readers
//     never block each other once construction has finished.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v→v) → ErrLoopNotAllowed.
//
//	– WithEdgeCapacity(n)
//	    Preallocates the edge catalog.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(V)
//	AddEdge(e Edge) (EdgeID, error)                      // O(1) amortized
//	Edge(id EdgeID) (Edge, error)                        // O(1)
//	OutEdges(v VertexID) ([]EdgeID, error)               // O(deg⁺(v))
//	Neighbors(v VertexID) ([]EdgeID, []Edge, error)      // O(deg⁺(v))
//	Edges() []Edge                                       // O(E)
//	VertexCount(), EdgeCount(), HasVertex(v), Stats()
//
// Example:
//
//	g, _ := core.NewGraph(2)
//	id, _ := g.AddEdge(core.Edge{From: 0, To: 1, Weight: 6, Name: "Airport"})
//	e, _ := g.Edge(id) // e.Weight == 6
package core
