package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/postman/matrix"
)

// Match runs the heuristic selected by s over vertices.
// It returns the pairs in acceptance order and their total weight.
func Match(s Strategy, vertices []int, sp *matrix.ShortestPaths) ([]Pair, float64, error) {
	switch s {
	case Greedy:
		return GreedyMatch(vertices, sp)
	case VertexScan:
		return VertexScanMatch(vertices, sp)
	default:
		return nil, 0, fmt.Errorf("Match: %v: %w", s, ErrUnknownStrategy)
	}
}

// GreedyMatch pairs vertices by globally cheapest pair first.
//
// Implementation:
//   - Stage 1: validate and sort the input.
//   - Stage 2: push every pair {u,v} (u < v) with finite distance onto a
//     min-heap ordered by (distance, u, v).
//   - Stage 3: pop pairs; accept a pair iff both ends are free, until all
//     vertices are matched.
//
// Complexity: O(k² log k) time and O(k²) memory for k vertices.
func GreedyMatch(vertices []int, sp *matrix.ShortestPaths) ([]Pair, float64, error) {
	vs, err := prepare(vertices, sp)
	if err != nil {
		return nil, 0, fmt.Errorf("GreedyMatch: %w", err)
	}

	heap := binaryheap.NewWith(func(a, b interface{}) int {
		return comparePairs(a.(Pair), b.(Pair))
	})
	for _, p := range candidates(vs, sp) {
		heap.Push(p)
	}

	matched := make(map[int]bool, len(vs))
	pairs := make([]Pair, 0, len(vs)/2)
	for len(pairs) < len(vs)/2 {
		top, ok := heap.Pop()
		if !ok {
			break
		}
		p := top.(Pair)
		if matched[p.U] || matched[p.V] {
			continue
		}
		matched[p.U], matched[p.V] = true, true
		pairs = append(pairs, p)
	}
	if len(pairs) < len(vs)/2 {
		for _, v := range vs {
			if !matched[v] {
				return nil, 0, fmt.Errorf("GreedyMatch: vertex %d: %w", v, ErrUnmatched)
			}
		}
	}

	return annotate(pairs, sp)
}

// VertexScanMatch pairs the lowest-numbered free vertex with its nearest free
// partner, repeatedly. Equal distances go to the lowest partner id.
//
// Free vertices are kept in an ordered tree so the lowest one and the scan
// order are both available without re-sorting.
//
// Complexity: O(k²) distance lookups plus O(k log k) tree maintenance.
func VertexScanMatch(vertices []int, sp *matrix.ShortestPaths) ([]Pair, float64, error) {
	vs, err := prepare(vertices, sp)
	if err != nil {
		return nil, 0, fmt.Errorf("VertexScanMatch: %w", err)
	}

	free := redblacktree.NewWithIntComparator()
	for _, v := range vs {
		free.Put(v, struct{}{})
	}

	pairs := make([]Pair, 0, len(vs)/2)
	for !free.Empty() {
		u := free.Left().Key.(int)
		free.Remove(u)

		partner, best := -1, math.Inf(1)
		it := free.Iterator()
		for it.Next() {
			v := it.Key().(int)
			if d := sp.Dist(u, v); d < best { // strict: ascending scan keeps lowest id
				partner, best = v, d
			}
		}
		if partner < 0 {
			return nil, 0, fmt.Errorf("VertexScanMatch: vertex %d: %w", u, ErrUnmatched)
		}
		free.Remove(partner)
		pairs = append(pairs, Pair{U: u, V: partner, Weight: best})
	}

	return annotate(pairs, sp)
}

// Candidates returns the edges of the complete auxiliary graph over
// vertices: every pair {u,v} (u < v) with a finite distance, ordered by
// (Weight, U, V). Paths are not attached.
func Candidates(vertices []int, sp *matrix.ShortestPaths) ([]Pair, error) {
	vs, err := prepare(vertices, sp)
	if err != nil {
		return nil, fmt.Errorf("Candidates: %w", err)
	}
	out := candidates(vs, sp)
	sort.SliceStable(out, func(i, j int) bool { return comparePairs(out[i], out[j]) < 0 })

	return out, nil
}

func candidates(vs []int, sp *matrix.ShortestPaths) []Pair {
	var out []Pair
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if d := sp.Dist(vs[i], vs[j]); !math.IsInf(d, 1) {
				out = append(out, Pair{U: vs[i], V: vs[j], Weight: d})
			}
		}
	}

	return out
}

// Verify checks that pairs form a perfect matching of vertices: every vertex
// appears in exactly one pair and no other vertex appears at all.
func Verify(vertices []int, pairs []Pair) error {
	want := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		want[v] = true
	}
	if len(pairs)*2 != len(want) {
		return fmt.Errorf("Verify: %d pairs for %d vertices: %w", len(pairs), len(want), ErrInvalidMatching)
	}

	seen := make(map[int]bool, len(want))
	for _, p := range pairs {
		for _, x := range [2]int{p.U, p.V} {
			if !want[x] {
				return fmt.Errorf("Verify: vertex %d not in input: %w", x, ErrInvalidMatching)
			}
			if seen[x] {
				return fmt.Errorf("Verify: vertex %d matched twice: %w", x, ErrInvalidMatching)
			}
			seen[x] = true
		}
	}

	return nil
}

// prepare validates the input and returns a sorted copy.
func prepare(vertices []int, sp *matrix.ShortestPaths) ([]int, error) {
	if sp == nil {
		return nil, ErrNilPaths
	}
	if len(vertices)%2 != 0 {
		return nil, fmt.Errorf("%d vertices: %w", len(vertices), ErrOddCount)
	}

	vs := append([]int(nil), vertices...)
	sort.Ints(vs)
	for i, v := range vs {
		if v < 0 || v >= sp.Order() {
			return nil, fmt.Errorf("vertex %d: %w", v, matrix.ErrOutOfRange)
		}
		if i > 0 && vs[i-1] == v {
			return nil, fmt.Errorf("vertex %d: %w", v, ErrDuplicateVertex)
		}
	}

	return vs, nil
}

// annotate attaches the real shortest path to every pair and sums weights.
func annotate(pairs []Pair, sp *matrix.ShortestPaths) ([]Pair, float64, error) {
	var total float64
	for i := range pairs {
		path, err := sp.Path(pairs[i].U, pairs[i].V)
		if err != nil {
			return nil, 0, err
		}
		pairs[i].Path = path
		total += pairs[i].Weight
	}

	return pairs, total, nil
}

// comparePairs orders by (Weight, U, V) ascending.
func comparePairs(a, b Pair) int {
	switch {
	case a.Weight < b.Weight:
		return -1
	case a.Weight > b.Weight:
		return 1
	case a.U != b.U:
		return a.U - b.U
	default:
		return a.V - b.V
	}
}
