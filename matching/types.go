package matching

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/postman/core"
)

var (
	// ErrOddCount indicates an odd number of vertices to match.
	ErrOddCount = errors.New("matching: odd number of vertices")

	// ErrDuplicateVertex indicates that a vertex appears twice in the input.
	ErrDuplicateVertex = errors.New("matching: duplicate vertex")

	// ErrUnmatched indicates that some vertex has no reachable free partner.
	ErrUnmatched = errors.New("matching: vertex has no reachable partner")

	// ErrUnknownStrategy indicates an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("matching: unknown strategy")

	// ErrNilPaths indicates a nil shortest-path table.
	ErrNilPaths = errors.New("matching: shortest paths table is nil")

	// ErrInvalidMatching is returned by Verify for a set of pairs that is not
	// a perfect matching of the given vertices.
	ErrInvalidMatching = errors.New("matching: not a perfect matching")
)

// Strategy selects a matching heuristic.
type Strategy int

const (
	// Greedy pairs globally cheapest pairs first.
	Greedy Strategy = iota
	// VertexScan pairs the lowest free vertex with its nearest free partner.
	VertexScan
)

// String returns the canonical name of s.
func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "greedy"
	case VertexScan:
		return "vertex-scan"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name to a Strategy. Matching is case-insensitive and
// accepts "vertexscan" and "scan" as aliases of "vertex-scan". An empty name
// selects nothing and is rejected like any unknown one.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy":
		return Greedy, nil
	case "vertex-scan", "vertexscan", "scan":
		return VertexScan, nil
	}

	return Greedy, fmt.Errorf("ParseStrategy: %q: %w", name, ErrUnknownStrategy)
}

// Set implements pflag.Value.
func (s *Strategy) Set(name string) error {
	v, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Type implements pflag.Value.
func (s *Strategy) Type() string { return "strategy" }

// Pair is one matched pair of vertices (U < V) and the real edges of the
// shortest U→V path joining them.
type Pair struct {
	U      int
	V      int
	Weight float64
	Path   []*core.Edge
}
