// SPDX-License-Identifier: MIT
package catalogue

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/transitcat/geo"
)

// Builder ingests stops, buses and distances into an append-only arena.
// Freeze hands out an immutable Catalogue and turns every further mutation
// into ErrFrozen. A Builder is not safe for concurrent use.
type Builder struct {
	stops     []Stop
	stopIndex map[string]StopID

	buses    []Bus
	busIndex map[string]BusID

	distances map[stopPair]int

	// busesAt[stop] lists every bus visiting the stop, once, in insertion order.
	busesAt [][]BusID

	frozen *Catalogue
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		stopIndex: make(map[string]StopID),
		busIndex:  make(map[string]BusID),
		distances: make(map[stopPair]int),
	}
}

// AddStop inserts a stop. Re-adding an existing name is rejected with
// ErrDuplicateStop; the first record stays authoritative.
func (b *Builder) AddStop(name string, coords geo.Coordinates) (StopID, error) {
	if b.frozen != nil {
		return 0, ErrFrozen
	}
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, ok := b.stopIndex[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateStop, name)
	}
	if err := coords.Validate(); err != nil {
		return 0, fmt.Errorf("catalogue: stop %q: %w", name, err)
	}

	id := StopID(len(b.stops))
	b.stops = append(b.stops, Stop{Name: name, Coordinates: coords})
	b.stopIndex[name] = id
	b.busesAt = append(b.busesAt, nil)

	return id, nil
}

// AddBus resolves stopNames and inserts a bus. Every name must already be a stop.
func (b *Builder) AddBus(name string, stopNames []string, roundtrip bool) (BusID, error) {
	if b.frozen != nil {
		return 0, ErrFrozen
	}
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, ok := b.busIndex[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateBus, name)
	}
	if len(stopNames) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrEmptyRoute, name)
	}

	stops := make([]StopID, len(stopNames))
	for i, stopName := range stopNames {
		id, ok := b.stopIndex[stopName]
		if !ok {
			return 0, fmt.Errorf("%w: %q on bus %q", ErrUnknownStop, stopName, name)
		}
		stops[i] = id
	}

	id := BusID(len(b.buses))
	b.buses = append(b.buses, Bus{Name: name, Stops: stops, Roundtrip: roundtrip})
	b.busIndex[name] = id

	seen := make(map[StopID]struct{}, len(stops))
	for _, s := range stops {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		b.busesAt[s] = append(b.busesAt[s], id)
	}

	return id, nil
}

// AddDistance records the directed road distance from → to in meters.
// A later call for the same ordered pair overwrites the earlier value.
func (b *Builder) AddDistance(from, to string, meters int) error {
	if b.frozen != nil {
		return ErrFrozen
	}
	fromID, ok := b.stopIndex[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}
	toID, ok := b.stopIndex[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, to)
	}
	if meters < 0 {
		return fmt.Errorf("%w: %q→%q %d", ErrNegativeDistance, from, to, meters)
	}
	b.distances[stopPair{from: fromID, to: toID}] = meters

	return nil
}

// HasStop reports whether a stop with the given name was added.
func (b *Builder) HasStop(name string) bool {
	_, ok := b.stopIndex[name]
	return ok
}

// Frozen reports whether Freeze has been called.
func (b *Builder) Frozen() bool {
	return b.frozen != nil
}

// Freeze returns the immutable snapshot of everything ingested so far.
// Calling it again returns the same Catalogue.
func (b *Builder) Freeze() *Catalogue {
	if b.frozen != nil {
		return b.frozen
	}

	c := &Catalogue{
		stops:     b.stops,
		stopIndex: b.stopIndex,
		buses:     b.buses,
		busIndex:  b.busIndex,
		distances: b.distances,
	}
	c.index(b.busesAt)
	b.frozen = c

	log.Debug().
		Int("stops", len(c.stops)).
		Int("buses", len(c.buses)).
		Int("distances", len(c.distances)).
		Msg("catalogue frozen")

	return c
}
