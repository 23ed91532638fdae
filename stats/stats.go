// SPDX-License-Identifier: MIT
// Package stats derives per-bus and per-stop statistics from a frozen catalogue.
//
// A road distance missing from the catalogue contributes 0 to RouteLength;
// statistics never fail on incomplete distance data.
package stats

import (
	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/geo"
)

// BusInfo summarizes one bus route.
type BusInfo struct {
	Name string
	// StopCount is the length of the full traversal (return leg included).
	StopCount int
	// UniqueStopCount is the number of distinct stops visited.
	UniqueStopCount int
	// RouteLength is the road length in meters.
	RouteLength int
	// GeoLength is the great-circle length in meters.
	GeoLength float64
	// Curvature is RouteLength / GeoLength, or 0 when GeoLength is 0.
	Curvature float64
}

// StopInfo lists the buses serving one stop, sorted by name.
type StopInfo struct {
	Name  string
	Buses []string
}

// Bus computes BusInfo for the named bus. ok is false for an unknown bus.
func Bus(c *catalogue.Catalogue, name string) (BusInfo, bool) {
	id, ok := c.FindBus(name)
	if !ok {
		return BusInfo{}, false
	}
	route := c.Bus(id).Route()

	info := BusInfo{
		Name:            name,
		StopCount:       len(route),
		UniqueStopCount: UniqueStops(route),
		RouteLength:     RouteLength(c, route),
		GeoLength:       GeoLength(c, route),
	}
	if info.GeoLength > 0 {
		info.Curvature = float64(info.RouteLength) / info.GeoLength
	}

	return info, true
}

// Stop computes StopInfo for the named stop. ok is false for an unknown stop.
func Stop(c *catalogue.Catalogue, name string) (StopInfo, bool) {
	buses, ok := c.BusesServing(name)
	if !ok {
		return StopInfo{}, false
	}

	return StopInfo{Name: name, Buses: buses}, true
}

// UniqueStops counts distinct stop ids in route.
func UniqueStops(route []catalogue.StopID) int {
	seen := make(map[catalogue.StopID]struct{}, len(route))
	for _, id := range route {
		seen[id] = struct{}{}
	}

	return len(seen)
}

// RouteLength sums road distances over consecutive stops of route.
// Unresolvable hops count as 0.
func RouteLength(c *catalogue.Catalogue, route []catalogue.StopID) int {
	total := 0
	for i := 1; i < len(route); i++ {
		if d, ok := c.Distance(route[i-1], route[i]); ok {
			total += d
		}
	}

	return total
}

// GeoLength sums great-circle distances over consecutive stops of route.
func GeoLength(c *catalogue.Catalogue, route []catalogue.StopID) float64 {
	total := 0.0
	for i := 1; i < len(route); i++ {
		total += geo.Distance(c.Stop(route[i-1]).Coordinates, c.Stop(route[i]).Coordinates)
	}

	return total
}
