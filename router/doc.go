// SPDX-License-Identifier: MIT
// Package router turns a frozen catalogue into a routing graph and answers
// fastest-itinerary queries between stops.
//
// Every stop is split into an arrival and a departure vertex joined by a wait
// edge, so a transfer always pays the boarding wait exactly once:
//
//	arrival(A) --wait 6--> departure(A) --bus 1, 2 spans--> arrival(C)
//
// Query routes start and end at arrival vertices. Travel time on a ride edge
// is meters / (velocity × 1000 / 60), in minutes.
package router
