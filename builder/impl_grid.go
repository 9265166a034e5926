package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/instance"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols street grid.
//
// Vertex (r,c) has id r*cols+c. For each cell in row-major order the right
// edge is emitted before the bottom edge, so the edge order (and therefore
// every RNG draw) is stable for a fixed seed.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		in.Name = fmt.Sprintf("grid-%dx%d", rows, cols)
		in.Vertices = rows * cols
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := cfg.addEdge(in, u, u+1); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := cfg.addEdge(in, u, u+cols); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
