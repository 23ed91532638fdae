// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Transit graph construction (vertex doubling + ride edges).
// Layout:
//   - Stops are ranked by name; stop of rank r owns arrival vertex 2r and
//     departure vertex 2r+1.
//   - Wait edge arrival → departure carries the boarding wait (span 0).
//   - Ride edge departure(i) → arrival(j) carries travel time (span j-i).
// Determinism:
//   - Stops and buses are visited in name order, so two builds over the same
//     catalogue produce identical edge lists.

package router

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/core"
)

// ErrEmptyCatalogue is returned by BuildGraph for a catalogue without stops.
var ErrEmptyCatalogue = errors.New("router: catalogue has no stops")

// Graph is the routing graph derived from one catalogue snapshot.
// It is immutable once BuildGraph returns.
type Graph struct {
	cat    *catalogue.Catalogue
	params config.RoutingParameters
	g      *core.Graph

	arrival map[string]core.VertexID
}

// ArrivalVertex returns the arrival vertex of the stop with name rank r.
func ArrivalVertex(r int) core.VertexID { return core.VertexID(2 * r) }

// DepartureVertex returns the departure vertex of the stop with name rank r.
func DepartureVertex(r int) core.VertexID { return core.VertexID(2*r + 1) }

// BuildGraph derives the routing graph of cat under params.
//
// A ride edge is created for every pair of positions i < j on a bus route
// whose stops differ, provided every hop between them has a known road
// distance in both directions. Buses that are not roundtrip also receive the
// opposite edge, weighted by the reverse distances.
func BuildGraph(cat *catalogue.Catalogue, params config.RoutingParameters) (*Graph, error) {
	if cat == nil || cat.StopCount() == 0 {
		return nil, ErrEmptyCatalogue
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	sorted := cat.SortedStops()
	g, err := core.NewGraph(2*len(sorted), core.WithEdgeCapacity(len(sorted)))
	if err != nil {
		return nil, fmt.Errorf("router: allocate graph: %w", err)
	}

	out := &Graph{
		cat:     cat,
		params:  params,
		g:       g,
		arrival: make(map[string]core.VertexID, len(sorted)),
	}

	// rank[stopID] is the name rank of the stop.
	rank := make([]int, cat.StopCount())
	for r, id := range sorted {
		stop := cat.Stop(id)
		rank[id] = r
		out.arrival[stop.Name] = ArrivalVertex(r)
		if _, err := g.AddEdge(core.Edge{
			From:   ArrivalVertex(r),
			To:     DepartureVertex(r),
			Weight: float64(params.BusWaitTime),
			Name:   stop.Name,
		}); err != nil {
			return nil, fmt.Errorf("router: wait edge %q: %w", stop.Name, err)
		}
	}

	for _, id := range cat.SortedBuses() {
		if err := out.addRides(cat.Bus(id), rank); err != nil {
			return nil, err
		}
	}

	stats := g.Stats()
	log.Debug().
		Int("vertices", stats.VertexCount).
		Int("edges", stats.EdgeCount).
		Int("wait_edges", stats.ZeroSpanEdgeCount).
		Msg("routing graph built")

	return out, nil
}

// addRides adds the ride edges of one bus.
func (gr *Graph) addRides(bus catalogue.Bus, rank []int) error {
	route := bus.Route()
	speed := gr.params.MetersPerMinute()

	for i := 0; i+1 < len(route); i++ {
		forward, reverse := 0, 0
		for j := i + 1; j < len(route); j++ {
			fwd, okFwd := gr.cat.Distance(route[j-1], route[j])
			rev, okRev := gr.cat.Distance(route[j], route[j-1])
			if !okFwd || !okRev {
				// every longer span from i crosses this hop too
				break
			}
			forward += fwd
			reverse += rev
			if route[i] == route[j] {
				continue
			}

			from, to := rank[route[i]], rank[route[j]]
			if err := gr.addRide(bus.Name, DepartureVertex(from), ArrivalVertex(to), forward, j-i, speed); err != nil {
				return err
			}
			if !bus.Roundtrip {
				if err := gr.addRide(bus.Name, DepartureVertex(to), ArrivalVertex(from), reverse, j-i, speed); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (gr *Graph) addRide(bus string, from, to core.VertexID, meters, span int, speed float64) error {
	_, err := gr.g.AddEdge(core.Edge{
		From:   from,
		To:     to,
		Weight: float64(meters) / speed,
		Name:   bus,
		Span:   span,
	})
	if err != nil {
		return fmt.Errorf("router: ride edge %q %d→%d: %w", bus, from, to, err)
	}

	return nil
}

// Core returns the underlying weighted digraph. Callers must not add edges.
func (gr *Graph) Core() *core.Graph { return gr.g }

// Catalogue returns the snapshot the graph was built from.
func (gr *Graph) Catalogue() *catalogue.Catalogue { return gr.cat }

// Params returns the routing parameters the graph was built with.
func (gr *Graph) Params() config.RoutingParameters { return gr.params }

// Arrival returns the arrival vertex of the named stop.
func (gr *Graph) Arrival(stop string) (core.VertexID, bool) {
	v, ok := gr.arrival[stop]
	return v, ok
}
