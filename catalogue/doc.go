// SPDX-License-Identifier: MIT
// Package catalogue owns the canonical collection of stops and buses and the
// directed road-distance index between stop pairs.
//
// Ingestion is two-phase. A Builder appends records into an arena and
// resolves names to stable integer ids (StopID, BusID); Freeze returns an
// immutable *Catalogue and rejects any later mutation with ErrFrozen, so a
// partially built catalogue is never observable by consumers.
//
// Policies:
//
//   - Re-adding a stop or bus name fails with ErrDuplicateStop/ErrDuplicateBus.
//   - Distances are directional. Lookup uses (from,to) and falls back to
//     (to,from) only when the forward entry is absent.
//   - Not-found lookups return ok == false; they never panic.
//   - Name-sorted orderings (SortedStops, SortedBuses) are computed at freeze
//     time and are what graph construction iterates, so vertex numbering does
//     not depend on map iteration order.
package catalogue
