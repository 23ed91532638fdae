// SPDX-License-Identifier: MIT
// Package requests reads JSON request documents into a transit.Session and
// renders the answers.
//
// Input:
//
//	{
//	  "base_requests": [
//	    {"type": "Stop", "name": "A", "latitude": 55.6, "longitude": 37.2,
//	     "road_distances": {"B": 2000}},
//	    {"type": "Bus", "name": "256", "stops": ["A", "B"], "is_roundtrip": false}
//	  ],
//	  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
//	  "stat_requests": [
//	    {"id": 1, "type": "Bus", "name": "256"},
//	    {"id": 2, "type": "Stop", "name": "A"},
//	    {"id": 3, "type": "Route", "from": "A", "to": "B"}
//	  ]
//	}
//
// Output is a JSON array with one object per stat request, in request order.
// A missing bus, stop or route yields {"error_message": "not found"}; Map
// requests yield {"error_message": "unsupported"}.
package requests
