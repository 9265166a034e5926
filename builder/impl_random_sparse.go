package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/instance"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for a connected random instance over n
// vertices.
//
// Implementation:
//   - Stage 1: a random spanning tree: vertex v (v ≥ 1) attaches to a
//     uniformly drawn earlier vertex, so G is always connected.
//   - Stage 2: every other pair {i,j} (i < j, i asc then j asc) is added
//     independently with probability p.
//
// Requires n ≥ 1, p ∈ [0,1] and an RNG.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		in.Name = fmt.Sprintf("sparse-%d", n)
		in.Vertices = n

		tree := make(map[[2]int]bool, n)
		for v := 1; v < n; v++ {
			u := cfg.rng.Intn(v)
			tree[[2]int{u, v}] = true
			if err := cfg.addEdge(in, u, v); err != nil {
				return fmt.Errorf("%s: %w", methodRandomSparse, err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if tree[[2]int{i, j}] || cfg.rng.Float64() >= p {
					continue
				}
				if err := cfg.addEdge(in, i, j); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}
