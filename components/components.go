package components

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/matrix"
)

// ErrGraphNil indicates that a nil *core.Graph was passed in.
var ErrGraphNil = errors.New("components: graph is nil")

// Find returns the connected components of g over its active vertices.
//
// Steps:
//  1. Build the reachability closure of g.
//  2. Scan active vertices ascending; the first unassigned vertex v opens a
//     new component made of every active w with reach[v][w].
//
// Complexity: O(V³) for the closure + O(V²) for the scan.
func Find(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	reach, err := matrix.TransitiveClosure(g)
	if err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}

	active := g.ActiveVertices()
	assigned := make([]bool, g.Order())
	var comps [][]int
	for _, v := range active {
		if assigned[v] {
			continue
		}
		var comp []int
		for _, w := range active {
			if reach.Reaches(v, w) {
				comp = append(comp, w)
				assigned[w] = true
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// IsConnected reports whether all active vertices of g lie in one component.
// A graph with no edges is considered connected.
func IsConnected(g *core.Graph) (bool, error) {
	comps, err := Find(g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}

// Index maps every vertex of an order-n graph to its component index, -1 for
// vertices outside every component.
func Index(comps [][]int, n int) []int {
	idx := make([]int, n)
	for v := range idx {
		idx[v] = -1
	}
	for c, comp := range comps {
		for _, v := range comp {
			if v >= 0 && v < n {
				idx[v] = c
			}
		}
	}

	return idx
}
