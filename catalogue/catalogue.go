// SPDX-License-Identifier: MIT
package catalogue

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Catalogue is the frozen, read-only view produced by Builder.Freeze.
// All methods are safe for concurrent use.
type Catalogue struct {
	stops     []Stop
	stopIndex map[string]StopID

	buses    []Bus
	busIndex map[string]BusID

	distances map[stopPair]int

	sortedStops []StopID
	sortedBuses []BusID
	serving     [][]string // stop → bus names sorted ascending
}

// index derives the name-sorted orderings consumed by graph construction
// and the per-stop serving sets.
func (c *Catalogue) index(busesAt [][]BusID) {
	c.sortedStops = make([]StopID, len(c.stops))
	for i := range c.stops {
		c.sortedStops[i] = StopID(i)
	}
	slices.SortFunc(c.sortedStops, func(a, b StopID) int {
		return strings.Compare(c.stops[a].Name, c.stops[b].Name)
	})

	c.sortedBuses = make([]BusID, len(c.buses))
	for i := range c.buses {
		c.sortedBuses[i] = BusID(i)
	}
	slices.SortFunc(c.sortedBuses, func(a, b BusID) int {
		return strings.Compare(c.buses[a].Name, c.buses[b].Name)
	})

	c.serving = make([][]string, len(c.stops))
	for stop, ids := range busesAt {
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = c.buses[id].Name
		}
		slices.Sort(names)
		c.serving[stop] = names
	}
}

// FindStop returns the id of the named stop.
func (c *Catalogue) FindStop(name string) (StopID, bool) {
	id, ok := c.stopIndex[name]
	return id, ok
}

// FindBus returns the id of the named bus.
func (c *Catalogue) FindBus(name string) (BusID, bool) {
	id, ok := c.busIndex[name]
	return id, ok
}

// Stop returns the stop record for id. id must come from this catalogue.
func (c *Catalogue) Stop(id StopID) Stop {
	return c.stops[id]
}

// Bus returns the bus record for id. id must come from this catalogue.
func (c *Catalogue) Bus(id BusID) Bus {
	return c.buses[id]
}

// Distance returns the stored from → to distance; when only to → from is
// stored it is used instead. ok is false when neither direction exists.
func (c *Catalogue) Distance(from, to StopID) (int, bool) {
	if d, ok := c.distances[stopPair{from: from, to: to}]; ok {
		return d, true
	}
	d, ok := c.distances[stopPair{from: to, to: from}]

	return d, ok
}

// GetDistance is Distance keyed by stop names. Unknown names yield false.
func (c *Catalogue) GetDistance(from, to string) (int, bool) {
	fromID, ok := c.stopIndex[from]
	if !ok {
		return 0, false
	}
	toID, ok := c.stopIndex[to]
	if !ok {
		return 0, false
	}

	return c.Distance(fromID, toID)
}

// BusesServing returns the names of buses visiting the stop, sorted ascending.
// ok is false only when the stop does not exist; an unserved stop yields an
// empty, non-nil slice.
func (c *Catalogue) BusesServing(stopName string) ([]string, bool) {
	id, ok := c.stopIndex[stopName]
	if !ok {
		return nil, false
	}
	out := make([]string, len(c.serving[id]))
	copy(out, c.serving[id])

	return out, true
}

// SortedStops returns every stop id ordered by stop name.
func (c *Catalogue) SortedStops() []StopID {
	return slices.Clone(c.sortedStops)
}

// SortedBuses returns every bus id ordered by bus name.
func (c *Catalogue) SortedBuses() []BusID {
	return slices.Clone(c.sortedBuses)
}

// StopsWithBuses returns the ids of stops served by at least one bus, ordered by name.
func (c *Catalogue) StopsWithBuses() []StopID {
	out := make([]StopID, 0, len(c.sortedStops))
	for _, id := range c.sortedStops {
		if len(c.serving[id]) > 0 {
			out = append(out, id)
		}
	}

	return out
}

// StopCount returns the number of stops.
func (c *Catalogue) StopCount() int { return len(c.stops) }

// BusCount returns the number of buses.
func (c *Catalogue) BusCount() int { return len(c.buses) }

// Stats returns a snapshot of catalogue sizes.
func (c *Catalogue) Stats() Stats {
	return Stats{Stops: len(c.stops), Buses: len(c.buses), Distances: len(c.distances)}
}
