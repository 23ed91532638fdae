// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/transitcat/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// are safe and every edge receives a distinct id.
func TestConcurrentAddEdge(t *testing.T) {
	g, err := core.NewGraph(NConcurrentAdds + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds)
	errs := make([]error, NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = g.AddEdge(core.Edge{From: 0, To: core.VertexID(i + 1), Weight: float64(i)})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	ids, err := g.OutEdges(0)
	require.NoError(t, err)
	require.Len(t, ids, NConcurrentAdds)

	seen := make(map[core.EdgeID]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	require.Len(t, seen, NConcurrentAdds, "edge ids must be unique")
}

// TestConcurrentReaders runs Neighbors/Stats readers in parallel on a built graph.
func TestConcurrentReaders(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	_, _ = g.AddEdge(core.Edge{From: 0, To: 1, Weight: 1})
	_, _ = g.AddEdge(core.Edge{From: 1, To: 2, Weight: 2})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, edges, err := g.Neighbors(1)
			if err != nil || len(edges) != 1 {
				t.Errorf("Neighbors(1) = %v, %v", edges, err)
			}
			_ = g.Stats()
		}()
	}
	wg.Wait()
}
