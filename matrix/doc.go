// Package matrix offers the dense V×V tables the postman pipeline is built on.
//
// The matrix package provides:
//
//   - ShortestPaths: all-pairs shortest distances (Floyd–Warshall) together
//     with an intermediate-vertex table recorded during relaxation, so every
//     shortest path can be rebuilt as the sequence of real graph edges it uses.
//   - Reachability: the Boolean transitive closure (Roy–Warshall) of a graph,
//     the basis of connected-component analysis.
//
// Both tables are stored row-major in a single flat slice and built with a
// fixed k → i → j loop order, so results are bit-for-bit reproducible.
// Matrices are best for small and medium graphs (tens to a few hundred
// vertices) where O(V²) memory and O(V³) time are acceptable.
//
// Path reconstruction never infers direction from edge endpoints after the
// fact. When relaxation improves (i,j) through k it records k; a path is then
// split recursively as path(i,k) ++ path(k,j) until every piece is a direct
// edge, the cheapest parallel edge (lowest ID on ties) chosen at init.
package matrix
