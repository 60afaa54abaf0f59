package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/storepath/gridgraph"
)

// randomFloor returns a size×size floor where roughly one cell in five is a shelf.
func randomFloor(b *testing.B, size int) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, size+1)
	for z := range values {
		values[z] = make([]int, size+1)
		for x := range values[z] {
			if rng.Intn(5) > 0 {
				values[z][x] = 1
			}
		}
	}
	g, err := gridgraph.FromMatrix(values, 1)
	if err != nil {
		b.Fatalf("setup FromMatrix failed: %v", err)
	}
	return g
}

// BenchmarkConnectedComponents measures labeling on a 501×501 floor.
// Complexity: O(N·4)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomFloor(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkDistanceField measures one BFS sweep on a 501×501 floor.
func BenchmarkDistanceField(b *testing.B) {
	g := randomFloor(b, 500)
	origin := gridgraph.Cell{X: 250, Z: 250}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.DistanceField(origin)
	}
}
