// Package rpp solves the Rural Postman Problem heuristically: find a cheap
// closed walk that traverses every required edge of an undirected weighted
// graph at least once.
//
// The Solver runs a fixed pipeline, modelled as a state machine:
//
//	PARSE → CONNECT → PARITY_FIX → CIRCUIT → DONE
//	   \________\__________\__________\____→ FAIL
//
//   - PARSE validates the two input graphs: Gr (required edges only) and G
//     (required ∪ optional), both of the same order.
//   - CONNECT finds the components of Gr. When there is more than one, the
//     components are linked by a minimum spanning tree over the meta-graph
//     whose edge costs are shortest-path distances in G; the real edges of
//     every chosen path are added to the working copy of Gr.
//   - PARITY_FIX pairs the odd-degree vertices of the working graph with the
//     selected matching heuristic and adds the real edges of every matched
//     path, so every degree becomes even.
//   - CIRCUIT extracts an Euler circuit from the working graph.
//   - DONE reports the walk and its cost: the sum of the weights of the
//     edges actually traversed.
//
// Failures are classified into three kinds, each a sentinel usable with
// errors.Is: ErrInput (bad input), ErrUnsolvable (required edges cannot be
// joined through G) and ErrInternal (a broken pipeline invariant). The
// concrete error is a *StageError naming the state that failed.
//
// The input graphs are never modified; all patching happens on a clone.
// Everything is synchronous and deterministic: identical input yields an
// identical walk.
//
// Example:
//
//	s := rpp.NewSolver(rpp.WithStrategy(matching.VertexScan))
//	res, err := s.Solve(required, full)
//	if errors.Is(err, rpp.ErrUnsolvable) {
//		// no feasible tour
//	}
package rpp
