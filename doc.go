// Package postman is a heuristic solver for the Rural Postman Problem: given
// an undirected weighted graph and a subset of "required" edges, find a cheap
// closed walk that traverses every required edge at least once.
//
// The pipeline follows the classic construction:
//
//  1. Connect: link the components of the required subgraph through the
//     full graph with a minimum spanning tree over shortest-path distances.
//  2. Parity fix: pair the odd-degree vertices (greedy or vertex-scan
//     heuristic) and duplicate the shortest path of every pair.
//  3. Circuit: extract an Euler circuit from the now connected, even graph.
//
// Packages, leaves first:
//
//	core/        — undirected multigraph with required flags and shortcut paths
//	matrix/      — Floyd–Warshall with path reconstruction; Roy–Warshall closure
//	components/  — connected components over active vertices
//	kruskal/     — union-find, Kruskal, component meta-graph linking
//	matching/    — greedy and vertex-scan perfect matchings of odd vertices
//	euler/       — Hierholzer circuit extraction
//	rpp/         — the solver state machine and its error taxonomy
//	instance/    — instance file format (Corberán style) reader and writer
//	builder/     — instance generators for tests, benchmarks and the CLI
//	config/      — YAML / dotenv / environment configuration
//	cmd/postman  — command-line front end
//
// Quick example:
//
//	    1 ───1─── 2 ···5··· 3 ───1─── 4      ─── required, ··· optional
//
//	in, _ := instance.ParseFile("corridor.txt")
//	required, full, _ := in.Graphs()
//	res, err := rpp.Solve(required, full, rpp.WithStrategy(matching.VertexScan))
//	// res.Walk = [0 1 2 3 2 1 0], res.Cost = 14
//
// The solver is deterministic: every ordering decision has a documented
// tie-break, so identical input always yields the identical walk.
package postman
