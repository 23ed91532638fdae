// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types used by the routing
// engine: a directed, weighted graph over dense integer vertex ids.
//
// This file declares VertexID, EdgeID, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound  - vertex id is outside [0, VertexCount).
//	ErrEdgeNotFound    - edge id is outside [0, EdgeCount).
//	ErrBadWeight       - weight is negative, NaN or infinite.
//	ErrBadSpan         - span is negative.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
//	ErrBadVertexCount  - NewGraph received a negative vertex count.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrBadSpan indicates a negative span counter on an edge.
	ErrBadSpan = errors.New("core: edge span must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadVertexCount indicates NewGraph was asked for a negative number of vertices.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")
)

// VertexID is a dense vertex identifier in [0, VertexCount).
type VertexID int

// EdgeID is a dense edge identifier assigned in insertion order, starting at 0.
type EdgeID int

// NoEdge marks the absence of an edge (e.g. the predecessor of a source vertex).
const NoEdge EdgeID = -1

// Edge is a one-way connection From→To.
//
// Name and Span carry routing metadata: for a wait edge Name is the stop name
// and Span is 0; for a ride edge Name is the bus name and Span is the number
// of stop-to-stop hops the edge covers.
type Edge struct {
	// From is the source vertex.
	From VertexID

	// To is the destination vertex.
	To VertexID

	// Weight is the traversal cost; always finite and non-negative.
	Weight float64

	// Name labels the edge (stop or bus name).
	Name string

	// Span counts hops covered by the edge; 0 for wait edges.
	Span int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithEdgeCapacity preallocates room for n edges.
// Non-positive values are ignored.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edges = make([]Edge, 0, n)
		}
	}
}

// Graph is a directed weighted graph with a fixed vertex set.
//
// Vertices are the integers [0, vertexCount). Edges are appended and never
// removed, so an EdgeID stays valid for the lifetime of the Graph.
// mu guards edges and the outgoing adjacency.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool

	// Storage
	vertexCount int
	edges       []Edge     // EdgeID → Edge
	outgoing    [][]EdgeID // VertexID → outgoing edge ids in insertion order
}

// NewGraph creates a Graph with vertexCount vertices and no edges.
// By default self-loops are rejected.
// Complexity: O(V).
func NewGraph(vertexCount int, opts ...GraphOption) (*Graph, error) {
	if vertexCount < 0 {
		return nil, ErrBadVertexCount
	}
	g := &Graph{
		vertexCount: vertexCount,
		outgoing:    make([][]EdgeID, vertexCount),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
