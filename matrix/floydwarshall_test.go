package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/matrix"
)

// mustGraph builds a graph of order n from {u, v, w} triples.
func mustGraph(t *testing.T, n int, edges [][3]float64) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, e := range edges {
		_, err := g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

// randomGraph draws a seeded graph with integer weights in [1,20].
func randomGraph(seed int64, n int, p float64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				_, _ = g.AddEdge(i, j, float64(1+r.Intn(20)))
			}
		}
	}

	return g
}

func TestFloydWarshall_NilGraph(t *testing.T) {
	t.Parallel()
	_, err := matrix.FloydWarshall(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

// TestFloydWarshall_Scenario checks distances and the exact edge path on a
// path-with-shortcut graph where the long way round is cheaper.
//
//	0 ─1─ 1 ─1─ 2 ─1─ 3
//	 \_________10______/
func TestFloydWarshall_Scenario(t *testing.T) {
	t.Parallel()
	g := mustGraph(t, 5, [][3]float64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {0, 3, 10}})

	sp, err := matrix.FloydWarshall(g)
	require.NoError(t, err)

	assert.Equal(t, 3.0, sp.Dist(0, 3))
	assert.Equal(t, 3.0, sp.Dist(3, 0))
	assert.Equal(t, 0.0, sp.Dist(2, 2))
	assert.True(t, math.IsInf(sp.Dist(0, 4), 1), "isolated vertex is unreachable")
	assert.True(t, math.IsInf(sp.Dist(0, 9), 1), "out of range reads as unreachable")
	assert.False(t, sp.Reachable(4, 0))

	walk, err := sp.PathVertices(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, walk)

	back, err := sp.PathVertices(3, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, back)

	edges, err := sp.Path(0, 3)
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{edges[0].ID, edges[1].ID, edges[2].ID})

	empty, err := sp.Path(1, 1)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = sp.Path(0, 4)
	assert.ErrorIs(t, err, matrix.ErrNoPath)
	_, err = sp.Path(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestFloydWarshall_ParallelEdgesAndLoops picks the cheapest parallel edge and
// ignores self-loops.
func TestFloydWarshall_ParallelEdgesAndLoops(t *testing.T) {
	t.Parallel()
	g := mustGraph(t, 2, [][3]float64{{0, 1, 4}, {1, 0, 2}, {0, 0, 1}, {1, 0, 2}})

	sp, err := matrix.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, sp.Dist(0, 1))
	assert.Equal(t, 0.0, sp.Dist(0, 0))

	edges, err := sp.Path(0, 1)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, 1, edges[0].ID, "lowest-ID edge among the cheapest wins")
}

// TestFloydWarshall_FixedPointAndTriangle checks the testable properties on
// seeded random graphs: symmetry, zero diagonal, triangle inequality for
// every triple, idempotent relaxation, and path weights equal to distances.
func TestFloydWarshall_FixedPointAndTriangle(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(seed, 14, 0.25)
		sp, err := matrix.FloydWarshall(g)
		require.NoError(t, err)

		n := sp.Order()
		for i := 0; i < n; i++ {
			assert.Zero(t, sp.Dist(i, i))
			for j := 0; j < n; j++ {
				require.Equal(t, sp.Dist(i, j), sp.Dist(j, i), "symmetry (%d,%d)", i, j)
				for k := 0; k < n; k++ {
					assert.LessOrEqual(t, sp.Dist(i, j), sp.Dist(i, k)+sp.Dist(k, j))
				}
				if !sp.Reachable(i, j) {
					continue
				}
				walk, err := sp.PathVertices(i, j)
				require.NoError(t, err)
				assert.Equal(t, i, walk[0])
				assert.Equal(t, j, walk[len(walk)-1])

				edges, err := sp.Path(i, j)
				require.NoError(t, err)
				var sum float64
				for _, e := range edges {
					sum += e.Weight
				}
				assert.Equal(t, sp.Dist(i, j), sum, "path weight (%d,%d)", i, j)
			}
		}

		assert.Zero(t, sp.Relax(), "seed %d: relaxation must be idempotent", seed)
	}
}

func TestTransitiveClosure(t *testing.T) {
	t.Parallel()
	g := mustGraph(t, 6, [][3]float64{{0, 1, 1}, {1, 2, 1}, {3, 4, 1}, {5, 5, 1}})

	r, err := matrix.TransitiveClosure(g)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Order())

	assert.True(t, r.Reaches(0, 2))
	assert.True(t, r.Reaches(2, 0))
	assert.True(t, r.Reaches(4, 3))
	assert.True(t, r.Reaches(5, 5))
	assert.False(t, r.Reaches(0, 3))
	assert.False(t, r.Reaches(2, 5))
	assert.False(t, r.Reaches(0, 7))
	assert.Equal(t, []bool{true, true, true, false, false, false}, r.Row(1))
	assert.Nil(t, r.Row(6))

	_, err = matrix.TransitiveClosure(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

// TestTransitiveClosure_AgreesWithDistances cross-checks closure against
// finite shortest-path distances.
func TestTransitiveClosure_AgreesWithDistances(t *testing.T) {
	t.Parallel()
	g := randomGraph(42, 20, 0.08)
	r, err := matrix.TransitiveClosure(g)
	require.NoError(t, err)
	sp, err := matrix.FloydWarshall(g)
	require.NoError(t, err)

	for i := 0; i < g.Order(); i++ {
		for j := 0; j < g.Order(); j++ {
			assert.Equal(t, sp.Reachable(i, j), r.Reaches(i, j), "(%d,%d)", i, j)
		}
	}
}
