// SPDX-License-Identifier: MIT
// Package transit is the single entry point for a transit session: populate
// stops, distances and buses, Build once, then query bus and stop statistics
// and fastest routes.
//
// A Session moves one way from populating to built. Mutations after Build
// fail with ErrAlreadyBuilt; queries before Build report not found.
package transit

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/router"
	"github.com/katalvlaran/transitcat/stats"
)

var (
	// ErrAlreadyBuilt is returned by mutations and Build once the session is built.
	ErrAlreadyBuilt = errors.New("transit: session already built")

	// ErrNotBuilt is returned by accessors that need a built session.
	ErrNotBuilt = errors.New("transit: session not built")
)

// Session owns one catalogue and the routing graph derived from it.
// All methods are safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	builder *catalogue.Builder
	cat     *catalogue.Catalogue
	router  *router.Router
}

// NewSession returns an empty session in the populating state.
func NewSession() *Session {
	return &Session{builder: catalogue.NewBuilder()}
}

// AddStop registers a stop.
func (s *Session) AddStop(name string, coords geo.Coordinates) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cat != nil {
		return fmt.Errorf("%w: add stop %q", ErrAlreadyBuilt, name)
	}
	_, err := s.builder.AddStop(name, coords)

	return err
}

// AddDistance records the road distance in meters from → to.
func (s *Session) AddDistance(from, to string, meters int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cat != nil {
		return fmt.Errorf("%w: add distance %q→%q", ErrAlreadyBuilt, from, to)
	}

	return s.builder.AddDistance(from, to, meters)
}

// AddBus registers a bus over already registered stops.
func (s *Session) AddBus(name string, stops []string, roundtrip bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cat != nil {
		return fmt.Errorf("%w: add bus %q", ErrAlreadyBuilt, name)
	}
	_, err := s.builder.AddBus(name, stops, roundtrip)

	return err
}

// Build freezes the catalogue and constructs the routing graph.
// Invalid params are rejected before anything is frozen. Any later failure
// leaves the catalogue frozen, so further mutations fail with
// catalogue.ErrFrozen.
func (s *Session) Build(params config.RoutingParameters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cat != nil {
		return ErrAlreadyBuilt
	}
	if err := params.Validate(); err != nil {
		return err
	}

	cat := s.builder.Freeze()
	graph, err := router.BuildGraph(cat, params)
	if err != nil {
		return err
	}
	r, err := router.NewRouter(graph)
	if err != nil {
		return err
	}
	s.cat, s.router = cat, r

	st := cat.Stats()
	log.Debug().
		Int("stops", st.Stops).
		Int("buses", st.Buses).
		Int("distances", st.Distances).
		Int("bus_wait_time", params.BusWaitTime).
		Float64("bus_velocity", params.BusVelocity).
		Msg("session built")

	return nil
}

// Built reports whether Build has succeeded.
func (s *Session) Built() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cat != nil
}

// GetBusInfo returns statistics for the named bus.
func (s *Session) GetBusInfo(name string) (stats.BusInfo, bool) {
	cat, _ := s.snapshot()
	if cat == nil {
		return stats.BusInfo{}, false
	}

	return stats.Bus(cat, name)
}

// GetStopInfo returns the buses serving the named stop.
func (s *Session) GetStopInfo(name string) (stats.StopInfo, bool) {
	cat, _ := s.snapshot()
	if cat == nil {
		return stats.StopInfo{}, false
	}

	return stats.Stop(cat, name)
}

// FindRoute returns the fastest itinerary between two stops.
func (s *Session) FindRoute(from, to string) (router.Route, bool) {
	_, r := s.snapshot()
	if r == nil {
		return router.Route{}, false
	}

	return r.FindRoute(from, to)
}

// Catalogue returns the frozen catalogue, or ErrNotBuilt.
func (s *Session) Catalogue() (*catalogue.Catalogue, error) {
	cat, _ := s.snapshot()
	if cat == nil {
		return nil, ErrNotBuilt
	}

	return cat, nil
}

// Router returns the route query service, or ErrNotBuilt.
func (s *Session) Router() (*router.Router, error) {
	_, r := s.snapshot()
	if r == nil {
		return nil, ErrNotBuilt
	}

	return r, nil
}

func (s *Session) snapshot() (*catalogue.Catalogue, *router.Router) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cat, s.router
}
