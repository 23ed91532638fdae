// SPDX-License-Identifier: MIT
package router

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/transitcat/dijkstra"
)

// ItemKind tells wait items from ride items.
type ItemKind int

const (
	// KindWait is time spent at a stop before boarding.
	KindWait ItemKind = iota
	// KindBus is a ride on one bus over one or more hops.
	KindBus
)

// String returns "Wait" or "Bus".
func (k ItemKind) String() string {
	switch k {
	case KindWait:
		return "Wait"
	case KindBus:
		return "Bus"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

// Item is one leg of a route. StopName is set for KindWait; BusName and
// SpanCount for KindBus. Time is in minutes.
type Item struct {
	Kind      ItemKind
	StopName  string
	BusName   string
	SpanCount int
	Time      float64
}

// Route is an itinerary; TotalTime is the sum of item times.
type Route struct {
	Items     []Item
	TotalTime float64
}

// Router answers stop-to-stop itinerary queries over a Graph.
// It is safe for concurrent use.
type Router struct {
	graph  *Graph
	engine *dijkstra.Router
}

// NewRouter binds a Router to graph.
func NewRouter(graph *Graph) (*Router, error) {
	if graph == nil {
		return nil, dijkstra.ErrNilGraph
	}
	engine, err := dijkstra.NewRouter(graph.Core())
	if err != nil {
		return nil, err
	}

	return &Router{graph: graph, engine: engine}, nil
}

// Graph returns the routing graph.
func (r *Router) Graph() *Graph { return r.graph }

// FindRoute returns the fastest itinerary from stop from to stop to.
// ok is false when either stop is unknown or to cannot be reached.
// A query from a stop to itself is found with no items.
func (r *Router) FindRoute(from, to string) (Route, bool) {
	src, ok := r.graph.Arrival(from)
	if !ok {
		return Route{}, false
	}
	dst, ok := r.graph.Arrival(to)
	if !ok {
		return Route{}, false
	}

	info, ok := r.engine.BuildRoute(src, dst)
	if !ok {
		return Route{}, false
	}

	route := Route{Items: make([]Item, 0, len(info.Edges))}
	for _, id := range info.Edges {
		e, err := r.graph.Core().Edge(id)
		if err != nil {
			log.Debug().Err(err).Int("edge", int(id)).Msg("route references missing edge")
			return Route{}, false
		}
		item := Item{Kind: KindBus, BusName: e.Name, SpanCount: e.Span, Time: e.Weight}
		if e.Span == 0 {
			item = Item{Kind: KindWait, StopName: e.Name, Time: e.Weight}
		}
		route.Items = append(route.Items, item)
		route.TotalTime += item.Time
	}

	return route, true
}
