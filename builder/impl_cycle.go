package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/instance"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the ring 0-1-…-(n-1)-0.
// Requires n ≥ 3. Complexity: O(n).
func Cycle(n int) Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		in.Name = fmt.Sprintf("cycle-%d", n)
		in.Vertices = n
		for i := 0; i < n; i++ {
			if err := cfg.addEdge(in, i, (i+1)%n); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}
