// SPDX-License-Identifier: MIT
package transit_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/router"
	"github.com/katalvlaran/transitcat/transit"
)

var params = config.RoutingParameters{BusWaitTime: 6, BusVelocity: 40}

// populate loads three stops on a meridian and bus 256 [A B C].
func populate(t *testing.T) *transit.Session {
	t.Helper()
	s := transit.NewSession()
	require.NoError(t, s.AddStop("A", geo.Coordinates{Lat: 55.60, Lng: 37.20}))
	require.NoError(t, s.AddStop("B", geo.Coordinates{Lat: 55.61, Lng: 37.20}))
	require.NoError(t, s.AddStop("C", geo.Coordinates{Lat: 55.62, Lng: 37.20}))
	require.NoError(t, s.AddDistance("A", "B", 2000))
	require.NoError(t, s.AddDistance("B", "C", 3000))
	require.NoError(t, s.AddBus("256", []string{"A", "B", "C"}, false))

	return s
}

func TestSession_Lifecycle(t *testing.T) {
	s := populate(t)
	assert.False(t, s.Built())

	_, ok := s.GetBusInfo("256")
	assert.False(t, ok, "queries need a built session")
	_, ok = s.FindRoute("A", "C")
	assert.False(t, ok)
	_, err := s.Catalogue()
	assert.ErrorIs(t, err, transit.ErrNotBuilt)
	_, err = s.Router()
	assert.ErrorIs(t, err, transit.ErrNotBuilt)

	require.NoError(t, s.Build(params))
	assert.True(t, s.Built())

	assert.ErrorIs(t, s.Build(params), transit.ErrAlreadyBuilt)
	assert.ErrorIs(t, s.AddStop("D", geo.Coordinates{}), transit.ErrAlreadyBuilt)
	assert.ErrorIs(t, s.AddDistance("A", "C", 1), transit.ErrAlreadyBuilt)
	assert.ErrorIs(t, s.AddBus("9", []string{"A"}, true), transit.ErrAlreadyBuilt)

	cat, err := s.Catalogue()
	require.NoError(t, err)
	assert.Equal(t, 3, cat.StopCount())
	r, err := s.Router()
	require.NoError(t, err)
	assert.NotNil(t, r.Graph())
}

func TestSession_Queries(t *testing.T) {
	s := populate(t)
	require.NoError(t, s.Build(params))

	bus, ok := s.GetBusInfo("256")
	require.True(t, ok)
	assert.Equal(t, 5, bus.StopCount)
	assert.Equal(t, 3, bus.UniqueStopCount)
	assert.Equal(t, 10000, bus.RouteLength)

	_, ok = s.GetBusInfo("751")
	assert.False(t, ok)

	stop, ok := s.GetStopInfo("B")
	require.True(t, ok)
	assert.Equal(t, []string{"256"}, stop.Buses)

	route, ok := s.FindRoute("A", "C")
	require.True(t, ok)
	assert.InDelta(t, 13.5, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 2)
	assert.Equal(t, router.KindWait, route.Items[0].Kind)
	assert.Equal(t, router.KindBus, route.Items[1].Kind)
}

func TestSession_IngestErrorsPassThrough(t *testing.T) {
	s := transit.NewSession()
	require.NoError(t, s.AddStop("A", geo.Coordinates{}))
	assert.ErrorIs(t, s.AddStop("A", geo.Coordinates{}), catalogue.ErrDuplicateStop)
	assert.ErrorIs(t, s.AddBus("1", []string{"A", "Z"}, true), catalogue.ErrUnknownStop)
	assert.ErrorIs(t, s.AddDistance("A", "A", -1), catalogue.ErrNegativeDistance)
}

func TestSession_BuildRejectsBadParams(t *testing.T) {
	s := populate(t)
	assert.ErrorIs(t, s.Build(config.RoutingParameters{}), config.ErrInvalidConfig)
	assert.False(t, s.Built())

	require.NoError(t, s.AddStop("D", geo.Coordinates{Lat: 1, Lng: 1}), "bad params freeze nothing")
	require.NoError(t, s.Build(params))
}

func TestSession_BuildEmpty(t *testing.T) {
	s := transit.NewSession()
	assert.ErrorIs(t, s.Build(params), router.ErrEmptyCatalogue)
	assert.False(t, s.Built())
	assert.ErrorIs(t, s.AddStop("A", geo.Coordinates{}), catalogue.ErrFrozen)
}

func TestSession_ConcurrentQueries(t *testing.T) {
	s := populate(t)
	require.NoError(t, s.Build(params))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			route, ok := s.FindRoute("C", "A")
			assert.True(t, ok)
			assert.InDelta(t, 13.5, route.TotalTime, 1e-9)
		}()
	}
	wg.Wait()
}
