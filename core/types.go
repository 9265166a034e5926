// Package core defines the central Graph and Edge types and the sentinel
// errors returned by graph mutation.
//
// Errors:
//
//	ErrVertexOutOfRange - endpoint outside [0, Order()).
//	ErrBadWeight        - negative, NaN or infinite edge weight.
//	ErrNilEdge          - nil hop inside a path.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an endpoint outside [0, Order()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrNilEdge indicates a nil hop inside a path handed to AddPath.
	ErrNilEdge = errors.New("core: nil edge in path")
)

// Edge represents one undirected connection between two vertices.
//
// Each Edge has a graph-unique ID (its insertion index), endpoints From/To,
// a non-negative Weight and a Required flag. Path is set only on synthetic
// shortcut edges: it lists, in walk order, the real edges the shortcut stands
// for. Edges are immutable once added.
type Edge struct {
	// ID is the insertion index of this edge in its Graph.
	ID int

	// From and To are the endpoints; order carries no meaning.
	From int
	To   int

	// Weight is the traversal cost.
	Weight float64

	// Required marks an edge the postman must service.
	Required bool

	// Path is the associated real path of a shortcut edge, nil otherwise.
	Path []*Edge
}

// Other returns the endpoint of e opposite to v.
// For a self-loop it returns v. If v is not an endpoint it returns -1.
func (e *Edge) Other(v int) int {
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return -1
	}
}

// IsLoop reports whether e is a self-loop.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithRequired marks the new edge as required.
func WithRequired() EdgeOption {
	return func(e *Edge) { e.Required = true }
}

// WithPath attaches an associated real path to the new edge.
// The slice is stored as given; callers must not mutate it afterwards.
func WithPath(path []*Edge) EdgeOption {
	return func(e *Edge) { e.Path = path }
}

// Graph is the in-memory undirected multigraph.
//
// order is fixed at construction. edges owns every Edge record; adj[v] holds
// indices into edges, with a self-loop registered twice at its vertex.
// active[v] is true once v has an incident edge.
type Graph struct {
	mu sync.RWMutex // guards everything below

	order  int
	edges  []*Edge
	adj    [][]int
	active []bool
	nAct   int
}

// GraphStats is a read-only snapshot of graph counters.
type GraphStats struct {
	Order         int
	EdgeCount     int
	ActiveCount   int
	RequiredCount int
	LoopCount     int
	OddCount      int
	TotalWeight   float64
}

// NewGraph creates an empty Graph over vertices [0, order).
// It panics when order is negative: that is a programmer error, never input.
// Complexity: O(order).
func NewGraph(order int) *Graph {
	if order < 0 {
		panic("core: NewGraph with negative order")
	}

	return &Graph{
		order:  order,
		adj:    make([][]int, order),
		active: make([]bool, order),
	}
}
