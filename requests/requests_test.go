// SPDX-License-Identifier: MIT
package requests_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/requests"
	"github.com/katalvlaran/transitcat/transit"
)

// The bus precedes its stops to check population order.
const document = `{
  "base_requests": [
    {"type": "Bus", "name": "256", "stops": ["A", "B", "C"], "is_roundtrip": false},
    {"type": "Stop", "name": "A", "latitude": 55.60, "longitude": 37.20, "road_distances": {"B": 2000}},
    {"type": "Stop", "name": "B", "latitude": 55.61, "longitude": 37.20, "road_distances": {"C": 3000}},
    {"type": "Stop", "name": "C", "latitude": 55.62, "longitude": 37.20},
    {"type": "Stop", "name": "D", "latitude": 55.70, "longitude": 37.30}
  ],
  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
  "stat_requests": [
    {"id": 1, "type": "Bus", "name": "256"},
    {"id": 2, "type": "Bus", "name": "999"},
    {"id": 3, "type": "Stop", "name": "B"},
    {"id": 4, "type": "Stop", "name": "D"},
    {"id": 5, "type": "Stop", "name": "X"},
    {"id": 6, "type": "Route", "from": "A", "to": "C"},
    {"id": 7, "type": "Route", "from": "A", "to": "D"},
    {"id": 8, "type": "Route", "from": "B", "to": "B"},
    {"id": 9, "type": "Map"}
  ]
}`

func process(t *testing.T, input string) []requests.Response {
	t.Helper()
	doc, err := requests.Decode(strings.NewReader(input))
	require.NoError(t, err)
	responses, err := doc.Process(transit.NewSession(), config.Default().Routing)
	require.NoError(t, err)

	return responses
}

func TestProcess(t *testing.T) {
	responses := process(t, document)
	require.Len(t, responses, 9)
	for i, r := range responses {
		assert.Equal(t, i+1, r.ID(), "responses keep request order")
	}

	bus, ok := responses[0].(requests.BusResponse)
	require.True(t, ok)
	assert.Equal(t, 5, bus.StopCount)
	assert.Equal(t, 3, bus.UniqueStopCount)
	assert.Equal(t, 10000, bus.RouteLength)
	assert.Greater(t, bus.Curvature, 1.0)

	assert.Equal(t, requests.ErrorResponse{ErrorMessage: "not found", RequestID: 2}, responses[1])
	assert.Equal(t, requests.StopResponse{Buses: []string{"256"}, RequestID: 3}, responses[2])
	assert.Equal(t, requests.StopResponse{Buses: []string{}, RequestID: 4}, responses[3])
	assert.Equal(t, requests.ErrorResponse{ErrorMessage: "not found", RequestID: 5}, responses[4])

	route, ok := responses[5].(requests.RouteResponse)
	require.True(t, ok)
	assert.InDelta(t, 13.5, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 2)
	assert.Equal(t, requests.RouteItem{Type: "Wait", StopName: "A", Time: 6}, route.Items[0])
	assert.Equal(t, "Bus", route.Items[1].Type)
	assert.Equal(t, "256", route.Items[1].Bus)
	assert.Equal(t, 2, route.Items[1].SpanCount)

	assert.Equal(t, requests.ErrorResponse{ErrorMessage: "not found", RequestID: 7}, responses[6])
	assert.Equal(t, requests.RouteResponse{Items: []requests.RouteItem{}, RequestID: 8}, responses[7])
	assert.Equal(t, requests.ErrorResponse{ErrorMessage: "unsupported", RequestID: 9}, responses[8])
}

func TestProcess_FallbackParams(t *testing.T) {
	input := `{
	  "base_requests": [
	    {"type": "Stop", "name": "A", "latitude": 0, "longitude": 0, "road_distances": {"B": 1000}},
	    {"type": "Stop", "name": "B", "latitude": 0, "longitude": 0.01},
	    {"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": false}
	  ],
	  "stat_requests": [{"id": 1, "type": "Route", "from": "A", "to": "B"}]
	}`
	doc, err := requests.Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Nil(t, doc.RoutingSettings)

	fallback := config.RoutingParameters{BusWaitTime: 1, BusVelocity: 60}
	responses, err := doc.Process(transit.NewSession(), fallback)
	require.NoError(t, err)
	route := responses[0].(requests.RouteResponse)
	assert.InDelta(t, 2.0, route.TotalTime, 1e-9)
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":        `{"base_requests": [`,
		"base type":     `{"base_requests": [{"type": "Tram", "name": "x"}]}`,
		"missing name":  `{"base_requests": [{"type": "Stop"}]}`,
		"stat type":     `{"stat_requests": [{"id": 1, "type": "Weather"}]}`,
		"bad velocity":  `{"routing_settings": {"bus_wait_time": 6, "bus_velocity": 0}}`,
		"negative wait": `{"routing_settings": {"bus_wait_time": -1, "bus_velocity": 40}}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := requests.Decode(strings.NewReader(input))
			assert.Error(t, err)
		})
	}

	_, err := requests.Decode(strings.NewReader(`{"stat_requests": [{"id": 1, "type": "Weather"}]}`))
	assert.ErrorIs(t, err, requests.ErrInvalidDocument)
}

func TestPopulate_Errors(t *testing.T) {
	doc := &requests.Document{BaseRequests: []requests.BaseRequest{
		{Type: requests.TypeStop, Name: "A", RoadDistances: map[string]int{"Nowhere": 10}},
	}}
	err := doc.Populate(transit.NewSession())
	assert.ErrorIs(t, err, catalogue.ErrUnknownStop)

	doc = &requests.Document{BaseRequests: []requests.BaseRequest{
		{Type: requests.TypeStop, Name: "A"},
		{Type: requests.TypeStop, Name: "A"},
	}}
	assert.ErrorIs(t, doc.Populate(transit.NewSession()), catalogue.ErrDuplicateStop)

	doc = &requests.Document{BaseRequests: []requests.BaseRequest{
		{Type: requests.TypeBus, Name: "1", Stops: []string{"A"}},
	}}
	assert.ErrorIs(t, doc.Populate(transit.NewSession()), catalogue.ErrUnknownStop)
}

func TestProcess_EmptyDocument(t *testing.T) {
	doc, err := requests.Decode(strings.NewReader(`{}`))
	require.NoError(t, err)
	_, err = doc.Process(transit.NewSession(), config.Default().Routing)
	assert.Error(t, err, "a session without stops cannot be built")
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	err := requests.Encode(&buf, []requests.Response{
		requests.BusResponse{Curvature: 1.5, RequestID: 1, RouteLength: 3000, StopCount: 3, UniqueStopCount: 2},
		requests.StopResponse{Buses: []string{}, RequestID: 2},
		requests.RouteResponse{
			Items: []requests.RouteItem{
				{Type: "Wait", StopName: "A", Time: 6},
				{Type: "Bus", Bus: "256", SpanCount: 2, Time: 7.5},
			},
			RequestID: 3,
			TotalTime: 13.5,
		},
		requests.ErrorResponse{ErrorMessage: "not found", RequestID: 4},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `[
	  {"curvature": 1.5, "request_id": 1, "route_length": 3000, "stop_count": 3, "unique_stop_count": 2},
	  {"buses": [], "request_id": 2},
	  {"items": [
	     {"type": "Wait", "stop_name": "A", "time": 6},
	     {"type": "Bus", "bus": "256", "span_count": 2, "time": 7.5}
	   ], "request_id": 3, "total_time": 13.5},
	  {"error_message": "not found", "request_id": 4}
	]`, buf.String())

	buf.Reset()
	require.NoError(t, requests.Encode(&buf, nil))
	assert.JSONEq(t, `[]`, buf.String())
}
