// SPDX-License-Identifier: MIT
package catalogue

import (
	"errors"

	"github.com/katalvlaran/transitcat/geo"
)

// Sentinel errors for catalogue ingestion.
var (
	// ErrEmptyName indicates a stop or bus with an empty name.
	ErrEmptyName = errors.New("catalogue: name is empty")

	// ErrDuplicateStop indicates a second AddStop under an existing name.
	ErrDuplicateStop = errors.New("catalogue: duplicate stop")

	// ErrDuplicateBus indicates a second AddBus under an existing name.
	ErrDuplicateBus = errors.New("catalogue: duplicate bus")

	// ErrUnknownStop indicates a reference to a stop that was never added.
	ErrUnknownStop = errors.New("catalogue: unknown stop")

	// ErrEmptyRoute indicates a bus without stops.
	ErrEmptyRoute = errors.New("catalogue: bus route has no stops")

	// ErrNegativeDistance indicates a negative road distance.
	ErrNegativeDistance = errors.New("catalogue: distance must be non-negative")

	// ErrFrozen indicates a mutation after Freeze.
	ErrFrozen = errors.New("catalogue: builder is frozen")
)

// StopID is the arena index of a Stop; stable for the life of the catalogue.
type StopID int

// BusID is the arena index of a Bus.
type BusID int

// Stop is a named geographic point. Immutable once added.
type Stop struct {
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named ordered traversal of stops.
//
// Stops holds the forward list as given. For a linear (non-roundtrip) bus
// the return leg is derived by Route and never stored.
type Bus struct {
	Name      string
	Stops     []StopID
	Roundtrip bool
}

// Route returns the full traversal order: Stops as given for a roundtrip,
// otherwise Stops followed by Stops reversed without its last element,
// so [A B C] becomes [A B C B A].
func (b Bus) Route() []StopID {
	if b.Roundtrip || len(b.Stops) < 2 {
		out := make([]StopID, len(b.Stops))
		copy(out, b.Stops)
		return out
	}

	out := make([]StopID, 0, 2*len(b.Stops)-1)
	out = append(out, b.Stops...)
	for i := len(b.Stops) - 2; i >= 0; i-- {
		out = append(out, b.Stops[i])
	}

	return out
}

// stopPair is the key of the directed distance index.
type stopPair struct {
	from StopID
	to   StopID
}

// Stats is a snapshot of catalogue sizes.
type Stats struct {
	Stops     int
	Buses     int
	Distances int
}
