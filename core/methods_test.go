// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in degree/handshake accounting, including self-loops.
//   - Validate endpoint and weight rejection with sentinel errors.
//   - Anchor ordering guarantees (Edges by ID, ActiveVertices ascending).

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postman/core"
)

// TestGraph_AddEdge_DegreeAndPresence checks that every valid AddEdge raises
// both endpoint degrees by one (a loop by two) and makes HasEdge true.
func TestGraph_AddEdge_DegreeAndPresence(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		weight   float64
	}{
		{"plain", 0, 1, 2.5},
		{"reversed", 3, 2, 1},
		{"zero weight", 1, 3, 0},
		{"self-loop", 2, 2, 4},
		{"parallel", 0, 1, 7},
	}

	g := core.NewGraph(4)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := make([]int, g.Order())
			for v := range before {
				before[v] = g.Degree(v)
			}

			e, err := g.AddEdge(tc.from, tc.to, tc.weight)
			require.NoError(t, err)
			assert.Equal(t, tc.from, e.From)
			assert.Equal(t, tc.to, e.To)

			if tc.from == tc.to {
				assert.Equal(t, before[tc.from]+2, g.Degree(tc.from))
			} else {
				assert.Equal(t, before[tc.from]+1, g.Degree(tc.from))
				assert.Equal(t, before[tc.to]+1, g.Degree(tc.to))
			}
			assert.True(t, g.HasEdge(tc.from, tc.to))
			assert.True(t, g.HasEdge(tc.to, tc.from))
			assert.True(t, g.IsActive(tc.from))
			assert.True(t, g.IsActive(tc.to))
		})
	}
	assert.Equal(t, len(cases), g.EdgeCount())
}

// TestGraph_AddEdge_Rejects verifies the sentinel errors and that a rejected
// edge leaves the graph untouched.
func TestGraph_AddEdge_Rejects(t *testing.T) {
	g := core.NewGraph(3)

	_, err := g.AddEdge(-1, 0, 1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.AddEdge(0, 3, 1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.AddEdge(0, 1, -0.5)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge(0, 1, math.NaN())
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge(0, 1, math.Inf(1))
	assert.ErrorIs(t, err, core.ErrBadWeight)

	assert.Zero(t, g.EdgeCount())
	assert.Zero(t, g.ActiveCount())
	assert.Empty(t, g.ActiveVertices())
}

func TestGraph_NewGraph_NegativeOrderPanics(t *testing.T) {
	assert.Panics(t, func() { core.NewGraph(-1) })
}

// TestGraph_Weight_MissingVersusZero documents that Weight cannot tell a
// missing edge from a zero-weight one; HasEdge can.
func TestGraph_Weight_MissingVersusZero(t *testing.T) {
	g := core.NewGraph(3)
	_, err := g.AddEdge(0, 1, 0)
	require.NoError(t, err)

	assert.Zero(t, g.Weight(0, 1))
	assert.Zero(t, g.Weight(1, 2))
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(5, 1))
}

// TestGraph_Weight_LowestIDParallel pins Weight to the first inserted edge.
func TestGraph_Weight_LowestIDParallel(t *testing.T) {
	g := core.NewGraph(2)
	_, _ = g.AddEdge(0, 1, 9)
	_, _ = g.AddEdge(1, 0, 3)

	assert.Equal(t, 9.0, g.Weight(0, 1))
	assert.Equal(t, 9.0, g.Weight(1, 0))
	between := g.EdgesBetween(0, 1)
	require.Len(t, between, 2)
	assert.Equal(t, 0, between[0].ID)
	assert.Equal(t, 1, between[1].ID)
}

// TestGraph_Edges_SelfLoopsOnce verifies that Edges and Incident report each
// self-loop once although adjacency holds it twice.
func TestGraph_Edges_SelfLoopsOnce(t *testing.T) {
	g := core.NewGraph(2)
	_, _ = g.AddEdge(0, 0, 1)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(0, 0, 3)

	edges := g.Edges()
	require.Len(t, edges, 3)
	for i, e := range edges {
		assert.Equal(t, i, e.ID)
	}

	assert.Equal(t, 5, g.Degree(0))
	inc := g.Incident(0)
	require.Len(t, inc, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{inc[0].ID, inc[1].ID, inc[2].ID})
	assert.Len(t, g.EdgesBetween(0, 0), 2)
}

func TestGraph_OddAndActiveVertices(t *testing.T) {
	g := core.NewGraph(6)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(4, 4, 1)

	assert.Equal(t, []int{0, 1, 2, 4}, g.ActiveVertices())
	assert.Equal(t, []int{0, 2}, g.OddVertices())
	assert.False(t, g.IsEven())
	assert.False(t, g.IsActive(3))
	assert.False(t, g.IsActive(5))

	_, _ = g.AddEdge(0, 2, 1)
	assert.Empty(t, g.OddVertices())
	assert.True(t, g.IsEven())
}

// TestGraph_AddPath_AllOrNothing checks materialization copies and atomicity.
func TestGraph_AddPath_AllOrNothing(t *testing.T) {
	src := core.NewGraph(3)
	a, _ := src.AddEdge(0, 1, 1, core.WithRequired())
	b, _ := src.AddEdge(1, 2, 5)

	g := core.NewGraph(3)
	added, err := g.AddPath([]*core.Edge{a, b})
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.False(t, added[0].Required, "materialized copies are patch edges")
	assert.Equal(t, 6.0, g.TotalWeight())

	_, err = g.AddPath([]*core.Edge{a, nil})
	assert.ErrorIs(t, err, core.ErrNilEdge)
	_, err = g.AddPath([]*core.Edge{a, {From: 0, To: 9}})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.Equal(t, 2, g.EdgeCount())
}

// TestGraph_Clone_Independent verifies the structural copy is isolated.
func TestGraph_Clone_Independent(t *testing.T) {
	g := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1, core.WithRequired())
	_, _ = g.AddEdge(1, 1, 2)

	c := g.Clone()
	_, err := c.AddEdge(1, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, c.EdgeCount())
	assert.False(t, g.IsActive(2))
	assert.Equal(t, g.Degree(1), 3)
	assert.Equal(t, c.Degree(1), 4)
	assert.True(t, c.Edges()[0].Required)
	assert.NotSame(t, g.Edges()[0], c.Edges()[0])
}

func TestGraph_Subgraph_RequiredOnly(t *testing.T) {
	g := core.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 1, core.WithRequired())
	_, _ = g.AddEdge(1, 2, 5)
	_, _ = g.AddEdge(2, 3, 1, core.WithRequired())

	sub, err := g.Subgraph(func(e *core.Edge) bool { return e.Required })
	require.NoError(t, err)
	assert.Equal(t, 4, sub.Order())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.Equal(t, []int{0, 1, 2, 3}, sub.ActiveVertices())
	assert.False(t, sub.HasEdge(1, 2))
}

// TestGraph_Subgraph_TamperedEdge reports an edge whose weight was changed
// through its shared pointer instead of copying it silently.
func TestGraph_Subgraph_TamperedEdge(t *testing.T) {
	g := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1, core.WithRequired())
	e, err := g.AddEdge(1, 2, 2, core.WithRequired())
	require.NoError(t, err)
	e.Weight = -1

	sub, err := g.Subgraph(func(*core.Edge) bool { return true })
	assert.ErrorIs(t, err, core.ErrBadWeight)
	assert.Nil(t, sub)

	sub, err = g.Subgraph(func(x *core.Edge) bool { return x.ID == 0 })
	require.NoError(t, err)
	assert.Equal(t, 1, sub.EdgeCount())
}

func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph(5)
	_, _ = g.AddEdge(0, 1, 1.5, core.WithRequired())
	_, _ = g.AddEdge(2, 2, 2)
	_, _ = g.AddEdge(1, 3, 0.5)

	st := g.Stats()
	assert.Equal(t, core.GraphStats{
		Order:         5,
		EdgeCount:     3,
		ActiveCount:   4,
		RequiredCount: 1,
		LoopCount:     1,
		OddCount:      2,
		TotalWeight:   4,
	}, *st)
}

func TestEdge_Other(t *testing.T) {
	e := &core.Edge{From: 3, To: 7}
	assert.Equal(t, 7, e.Other(3))
	assert.Equal(t, 3, e.Other(7))
	assert.Equal(t, -1, e.Other(5))
	loop := &core.Edge{From: 2, To: 2}
	assert.Equal(t, 2, loop.Other(2))
	assert.True(t, loop.IsLoop())
}
