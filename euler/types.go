package euler

import (
	"errors"

	"github.com/katalvlaran/postman/core"
)

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrOddDegree indicates an active vertex of odd degree.
	ErrOddDegree = errors.New("euler: vertex has odd degree")

	// ErrStartInactive indicates a configured start vertex with no incident edge.
	ErrStartInactive = errors.New("euler: start vertex is not active")

	// ErrIncompleteCircuit indicates that the walk did not consume every edge;
	// the graph is not connected over its active vertices.
	ErrIncompleteCircuit = errors.New("euler: circuit does not cover every edge")
)

// Circuit is a closed walk. Vertices[i] and Vertices[i+1] are joined by
// Edges[i]; len(Vertices) == len(Edges)+1 for a non-empty walk.
type Circuit struct {
	Vertices []int
	Edges    []*core.Edge
	Cost     float64
}

// Option configures Build.
type Option func(*options)

type options struct {
	start    int
	hasStart bool
}

// WithStart fixes the first (and last) vertex of the circuit. Without it the
// lowest active vertex is used.
func WithStart(v int) Option {
	return func(o *options) {
		o.start = v
		o.hasStart = true
	}
}
