// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for transitcat/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep method-level tests stdlib-only; concurrency tests use testify/require.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/transitcat/core"
)

// Common vertex ids used across core tests.
const (
	V0 core.VertexID = iota
	V1
	V2
	V3
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2_5 = 2.5
	Weight6   = 6.0
)

// NConcurrentAdds is the number of goroutines used by concurrency tests.
const NConcurrentAdds = 200

// mustGraph builds an empty graph with n vertices or fails the test.
func mustGraph(t *testing.T, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(n, opts...)
	MustNoError(t, err, "NewGraph")

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustEqualInt FAILS if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got=%d want=%d", op, got, want)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: predicate is false", op)
}
