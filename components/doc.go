// Package components partitions the active vertices of a graph into
// connected components.
//
// The partition is read off the Boolean transitive closure computed by
// matrix.TransitiveClosure (Roy–Warshall): two active vertices share a
// component iff each reaches the other. Isolated (inactive) vertices are not
// part of any component, since they carry no edge the postman must visit.
//
// Output is canonical: vertices ascend inside each component and components
// are ordered by their smallest vertex, so component indices are stable
// across runs and platforms.
//
// Complexity: O(V³) time and O(V²) space, dominated by the closure; fine for
// the tens to low hundreds of vertices typical of postman instances.
package components
