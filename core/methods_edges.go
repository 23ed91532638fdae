// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges/EdgeCount/OutEdges.
// Determinism:
//   - Edge ids are assigned in insertion order (0, 1, 2, ...).
//   - Edges() and OutEdges() return edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends e to the graph and returns its id.
//
// Steps:
//  1. Validate endpoints, weight, span and loops.
//  2. Lock mu, assign the next id, store e and link it into outgoing[e.From].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) (EdgeID, error) {
	// 1) Input validation
	if !g.HasVertex(e.From) {
		return NoEdge, fmt.Errorf("%w: from=%d", ErrVertexNotFound, e.From)
	}
	if !g.HasVertex(e.To) {
		return NoEdge, fmt.Errorf("%w: to=%d", ErrVertexNotFound, e.To)
	}
	if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
		return NoEdge, fmt.Errorf("%w: %d→%d weight=%v", ErrBadWeight, e.From, e.To, e.Weight)
	}
	if e.Span < 0 {
		return NoEdge, fmt.Errorf("%w: %d→%d span=%d", ErrBadSpan, e.From, e.To, e.Span)
	}
	if e.From == e.To && !g.allowLoops {
		return NoEdge, ErrLoopNotAllowed
	}

	// 2) Insert edge under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], id)

	return id, nil
}

// Edge returns a copy of the edge with the given id,
// or ErrEdgeNotFound if no such edge is present.
// Complexity: O(1).
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, ErrEdgeNotFound
	}

	return g.edges[id], nil
}

// Edges returns a copy of all edges indexed by EdgeID.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// OutEdges returns the ids of edges leaving v, in insertion order.
// The returned slice is a copy and may be modified by the caller.
// Complexity: O(deg⁺(v)).
func (g *Graph) OutEdges(v VertexID) ([]EdgeID, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]EdgeID, len(g.outgoing[v]))
	copy(out, g.outgoing[v])

	return out, nil
}

// Neighbors returns the edges leaving v, in insertion order, paired with their ids.
// It takes the read lock once, which makes it the preferred accessor inside
// traversal loops.
// Complexity: O(deg⁺(v)).
func (g *Graph) Neighbors(v VertexID) ([]EdgeID, []Edge, error) {
	if !g.HasVertex(v) {
		return nil, nil, ErrVertexNotFound
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]EdgeID, len(g.outgoing[v]))
	edges := make([]Edge, len(g.outgoing[v]))
	for i, id := range g.outgoing[v] {
		ids[i] = id
		edges[i] = g.edges[id]
	}

	return ids, edges, nil
}
