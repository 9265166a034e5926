package rpp

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/postman/matching"
)

// Option configures a Solver.
type Option func(*Solver)

// WithStrategy selects the matching heuristic for PARITY_FIX.
// Default: matching.Greedy.
func WithStrategy(s matching.Strategy) Option {
	return func(sv *Solver) { sv.strategy = s }
}

// WithLogger routes stage logging to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("rpp: WithLogger(nil)")
	}

	return func(sv *Solver) { sv.log = l }
}

// WithStart fixes the first vertex of the walk (0-based). It must be an
// active vertex of the final working graph, otherwise Solve fails with
// ErrInput.
func WithStart(v int) Option {
	return func(sv *Solver) {
		sv.start = v
		sv.hasStart = true
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
