package rpp

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/kruskal"
	"github.com/katalvlaran/postman/matching"
)

var (
	// ErrInput classifies malformed or inconsistent input.
	ErrInput = errors.New("rpp: invalid input")

	// ErrUnsolvable classifies instances whose required edges cannot be
	// joined through the full graph: no feasible tour exists.
	ErrUnsolvable = errors.New("rpp: no feasible tour")

	// ErrInternal classifies a broken invariant inside the pipeline.
	ErrInternal = errors.New("rpp: internal inconsistency")
)

// State is a pipeline stage.
type State int

const (
	StateParse State = iota
	StateConnect
	StateParityFix
	StateCircuit
	StateDone
	StateFail
)

func (s State) String() string {
	switch s {
	case StateParse:
		return "PARSE"
	case StateConnect:
		return "CONNECT"
	case StateParityFix:
		return "PARITY_FIX"
	case StateCircuit:
		return "CIRCUIT"
	case StateDone:
		return "DONE"
	case StateFail:
		return "FAIL"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText renders the state name, so structured log output carries
// "CONNECT" rather than a number.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// StageError reports the stage that failed, the failure kind (ErrInput,
// ErrUnsolvable or ErrInternal) and the underlying cause. errors.Is matches
// both the kind and anything in the cause chain.
type StageError struct {
	Stage State
	Kind  error
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Stage, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *StageError) Unwrap() []error { return []error{e.Kind, e.Err} }

// Result is the outcome of a successful Solve.
type Result struct {
	// Walk is the closed walk as a vertex sequence (first == last);
	// empty when there are no required edges.
	Walk []int
	// Edges[i] is the edge traversed between Walk[i] and Walk[i+1].
	Edges []*core.Edge
	// Cost is the total weight of Edges, rounded to 1e-9.
	Cost float64
	// Elapsed is the wall-clock time spent in Solve.
	Elapsed time.Duration

	// Strategy is the matching heuristic used in PARITY_FIX.
	Strategy matching.Strategy
	// Components is the number of components of Gr before CONNECT.
	Components int
	// Linked are the meta-edges accepted by CONNECT.
	Linked []kruskal.MetaEdge
	// Odd are the odd-degree vertices found by PARITY_FIX.
	Odd []int
	// Matching are the pairs chosen by PARITY_FIX.
	Matching []matching.Pair
	// AddedEdges counts the patch edges materialized into the working graph.
	AddedEdges int
	// Graph is the final, Eulerian working graph.
	Graph *core.Graph
}
