// SPDX-License-Identifier: MIT
// Package transitcat is an in-memory transit catalogue with a fastest-route
// engine.
//
// Stops, road distances and buses are loaded into a catalogue, frozen, and
// turned into a weighted graph where every stop owns an arrival and a
// departure vertex. Queries then answer bus statistics, the buses serving a
// stop, and the quickest itinerary between two stops.
//
// Packages:
//
//	geo        coordinates and great-circle distance
//	catalogue  two-phase stop/bus/distance store (Builder → Catalogue)
//	stats      route length, curvature and stop counts per bus
//	core       directed weighted graph over dense integer ids
//	dijkstra   shortest-path trees, path reconstruction, caching Router
//	router     transit graph construction and itinerary queries
//	transit    Session: populate once, Build, then query
//	config     YAML configuration with validation
//	requests   JSON request documents in, JSON responses out
//
// The transitcat command (cmd/transitcat) wraps requests for the shell:
//
//	transitcat --config transitcat.yml process --input requests.json
//	transitcat inspect < requests.json
package transitcat
