package euler

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

// token is one physical edge, shared by the queues of both endpoints.
type token struct {
	edge *core.Edge
	used bool
}

// frame is a stack entry: the vertex reached and the edge used to reach it.
type frame struct {
	v    int
	edge *core.Edge
}

// Build returns an Euler circuit of g.
//
// Implementation:
//   - Stage 1: reject odd-degree vertices and resolve the start vertex.
//   - Stage 2: build per-vertex token queues from g.Incident (insertion
//     order, loops once) with a read cursor each.
//   - Stage 3: from the top-of-stack vertex follow the first unused token,
//     pushing the far end; a vertex with no unused token is popped onto the
//     output together with the edge that led to it.
//   - Stage 4: reverse the output and check len(Edges) == E.
//
// A graph with no edges yields an empty Circuit.
// Complexity: O(V + E) time and memory.
func Build(g *core.Graph, opts ...Option) (*Circuit, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	total := g.EdgeCount()
	if total == 0 {
		return &Circuit{Vertices: []int{}, Edges: []*core.Edge{}}, nil
	}

	n := g.Order()
	for v := 0; v < n; v++ {
		if g.Degree(v)%2 != 0 {
			return nil, fmt.Errorf("Build: vertex %d degree %d: %w", v, g.Degree(v), ErrOddDegree)
		}
	}

	var start int
	if o.hasStart {
		if !g.IsActive(o.start) {
			return nil, fmt.Errorf("Build: vertex %d: %w", o.start, ErrStartInactive)
		}
		start = o.start
	} else {
		start = g.ActiveVertices()[0]
	}

	tokens := make(map[int]*token, total)
	queue := make([][]*token, n)
	for v := 0; v < n; v++ {
		for _, e := range g.Incident(v) {
			tk, ok := tokens[e.ID]
			if !ok {
				tk = &token{edge: e}
				tokens[e.ID] = tk
			}
			queue[v] = append(queue[v], tk)
		}
	}

	var (
		cursor   = make([]int, n)
		stack    = []frame{{v: start}}
		vertices = make([]int, 0, total+1)
		edges    = make([]*core.Edge, 0, total)
	)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		u := top.v
		q := queue[u]
		for cursor[u] < len(q) && q[cursor[u]].used {
			cursor[u]++
		}
		if cursor[u] == len(q) {
			stack = stack[:len(stack)-1]
			vertices = append(vertices, u)
			if top.edge != nil {
				edges = append(edges, top.edge)
			}
			continue
		}
		tk := q[cursor[u]]
		tk.used = true
		cursor[u]++
		stack = append(stack, frame{v: tk.edge.Other(u), edge: tk.edge})
	}

	if len(edges) != total {
		return nil, fmt.Errorf("Build: %d of %d edges from vertex %d: %w", len(edges), total, start, ErrIncompleteCircuit)
	}

	reverseInts(vertices)
	reverseEdges(edges)
	c := &Circuit{Vertices: vertices, Edges: edges}
	for _, e := range edges {
		c.Cost += e.Weight
	}

	return c, nil
}

// Verify checks that c is a closed walk over g using every edge exactly once.
func Verify(g *core.Graph, c *Circuit) error {
	if g == nil {
		return ErrGraphNil
	}
	if c == nil {
		return fmt.Errorf("Verify: nil circuit: %w", ErrIncompleteCircuit)
	}
	if len(c.Edges) != g.EdgeCount() {
		return fmt.Errorf("Verify: %d edges, graph has %d: %w", len(c.Edges), g.EdgeCount(), ErrIncompleteCircuit)
	}
	if len(c.Edges) == 0 {
		return nil
	}
	if len(c.Vertices) != len(c.Edges)+1 || c.Vertices[0] != c.Vertices[len(c.Vertices)-1] {
		return fmt.Errorf("Verify: walk is not closed: %w", ErrIncompleteCircuit)
	}

	seen := make(map[int]bool, len(c.Edges))
	for i, e := range c.Edges {
		if g.Edge(e.ID) != e || seen[e.ID] {
			return fmt.Errorf("Verify: step %d edge %d: %w", i, e.ID, ErrIncompleteCircuit)
		}
		seen[e.ID] = true
		if e.Other(c.Vertices[i]) != c.Vertices[i+1] {
			return fmt.Errorf("Verify: step %d: edge %d does not join %d and %d: %w",
				i, e.ID, c.Vertices[i], c.Vertices[i+1], ErrIncompleteCircuit)
		}
	}

	return nil
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseEdges(s []*core.Edge) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
