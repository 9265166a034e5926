// Package kruskal defines the meta-edge type and sentinel errors.
package kruskal

import (
	"errors"

	"github.com/katalvlaran/postman/core"
)

var (
	// ErrDisconnected indicates that no spanning tree can cover all meta-nodes:
	// at least one pair of groups has no finite connecting path.
	ErrDisconnected = errors.New("kruskal: meta-graph is disconnected")

	// ErrBadNodeCount indicates a negative meta-node count.
	ErrBadNodeCount = errors.New("kruskal: negative node count")

	// ErrEndpointRange indicates a candidate edge endpoint outside [0, n).
	ErrEndpointRange = errors.New("kruskal: candidate endpoint out of range")

	// ErrEmptyGroup indicates a group with no vertices.
	ErrEmptyGroup = errors.New("kruskal: empty group")

	// ErrNilPaths indicates a nil shortest-path table.
	ErrNilPaths = errors.New("kruskal: shortest paths table is nil")
)

// MetaEdge is an edge of the meta-graph between groups From and To
// (From < To). U and V are the real vertices realizing the minimum distance
// (U in group From, V in group To); Path is the real U→V shortest path.
type MetaEdge struct {
	From   int
	To     int
	U      int
	V      int
	Weight float64
	Path   []*core.Edge
}
