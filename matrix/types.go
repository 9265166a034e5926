// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors and table types.
//
// Every message is prefixed with "matrix: ..." for consistency. Callers
// match with errors.Is; context is added with fmt.Errorf("Op: ...: %w").

package matrix

import (
	"errors"

	"github.com/katalvlaran/postman/core"
)

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrOutOfRange indicates a row or column outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("matrix: no path between vertices")

	// ErrCorruptPath indicates that path reconstruction did not terminate
	// within the theoretical bound; the tables were tampered with.
	ErrCorruptPath = errors.New("matrix: path reconstruction exceeded bound")
)

// noVia marks a cell whose best-known path is the direct edge.
const noVia = -1

// ShortestPaths is the all-pairs shortest-path table of an undirected graph.
//
// dist[i*n+j] is the best-known distance (+Inf when unreachable),
// via[i*n+j] the intermediate vertex recorded on the last strict improvement
// (noVia for a direct edge), and direct[i*n+j] the cheapest real edge {i,j}.
type ShortestPaths struct {
	n      int
	dist   []float64
	via    []int
	direct []*core.Edge
}

// Reachability is the Boolean transitive closure of an undirected graph:
// reach[i*n+j] is true iff j can be reached from i (reflexive).
type Reachability struct {
	n     int
	reach []bool
}
