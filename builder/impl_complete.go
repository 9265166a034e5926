package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/instance"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n; pairs are emitted i asc, j asc.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		in.Name = fmt.Sprintf("complete-%d", n)
		in.Vertices = n
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.addEdge(in, i, j); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
