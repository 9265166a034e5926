// Package euler extracts an Euler circuit from a connected multigraph whose
// active vertices all have even degree (Hierholzer's algorithm, iterative).
//
// The caller's graph is never modified. Build creates a private per-vertex
// queue of edge tokens; one token exists per physical edge and is shared by
// the queues of both endpoints, so consuming it from either side retires it
// for good. Self-loops get a single token, enqueued once per pair of
// adjacency registrations.
//
// The result carries both the vertex sequence (length E+1, first == last)
// and the exact edge traversed at every step, so the walk cost is the sum of
// the weights actually used even when parallel edges differ in weight.
//
// A circuit that does not cover every edge means the precondition was
// violated (disconnected graph); Build then fails with
// ErrIncompleteCircuit instead of returning a partial walk.
package euler
