package rpp

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/postman/components"
	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/euler"
	"github.com/katalvlaran/postman/kruskal"
	"github.com/katalvlaran/postman/matching"
	"github.com/katalvlaran/postman/matrix"
)

const roundScale = 1e9

// Solver runs the RPP pipeline. A Solver holds configuration only and may be
// reused, including from several goroutines.
type Solver struct {
	strategy matching.Strategy
	log      logrus.FieldLogger
	start    int
	hasStart bool
}

// NewSolver returns a Solver with the given options applied over the
// defaults (Greedy matching, silent logger, lowest active start vertex).
func NewSolver(opts ...Option) *Solver {
	s := &Solver{strategy: matching.Greedy, log: discardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve is a shorthand for NewSolver(opts...).Solve(required, full).
func Solve(required, full *core.Graph, opts ...Option) (*Result, error) {
	return NewSolver(opts...).Solve(required, full)
}

// run carries the per-call state of one pipeline execution.
type run struct {
	*Solver
	full *core.Graph
	work *core.Graph
	sp   *matrix.ShortestPaths
	res  *Result
}

// Solve computes a closed walk over every edge of required, using edges of
// full to restore connectivity and parity. full must contain the required
// edges too (it is G = Gr ∪ optional) and both graphs must have the same
// order. Neither input is modified.
//
// Errors are *StageError values classified as ErrInput, ErrUnsolvable or
// ErrInternal.
func (s *Solver) Solve(required, full *core.Graph) (*Result, error) {
	began := time.Now()
	r := &run{Solver: s, full: full, res: &Result{Strategy: s.strategy}}

	if err := r.parse(required); err != nil {
		return nil, err
	}
	if r.work.EdgeCount() == 0 {
		r.res.Walk, r.res.Edges, r.res.Graph = []int{}, []*core.Edge{}, r.work
		r.res.Elapsed = time.Since(began)
		r.log.WithField("stage", StateDone).Debug("no required edges")
		return r.res, nil
	}

	steps := []func() error{r.connect, r.parityFix, r.circuit}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	r.res.Graph = r.work
	r.res.Elapsed = time.Since(began)
	r.log.WithFields(logrus.Fields{
		"stage":       StateDone,
		"cost":        r.res.Cost,
		"added_edges": r.res.AddedEdges,
		"elapsed":     r.res.Elapsed,
	}).Debug("walk complete")

	return r.res, nil
}

// parse validates the inputs and clones Gr into the working graph.
func (r *run) parse(required *core.Graph) error {
	switch {
	case required == nil || r.full == nil:
		return r.fail(StateParse, ErrInput, errors.New("nil graph"))
	case required.Order() != r.full.Order():
		return r.fail(StateParse, ErrInput,
			fmt.Errorf("order mismatch: required %d, full %d", required.Order(), r.full.Order()))
	}
	if _, err := matching.ParseStrategy(r.strategy.String()); err != nil {
		return r.fail(StateParse, ErrInput, err)
	}

	r.work = required.Clone()
	r.log.WithFields(logrus.Fields{
		"stage":    StateParse,
		"vertices": r.work.Order(),
		"required": r.work.EdgeCount(),
		"edges":    r.full.EdgeCount(),
	}).Debug("instance loaded")

	return nil
}

// connect links the components of the working graph through G.
func (r *run) connect() error {
	comps, err := components.Find(r.work)
	if err != nil {
		return r.fail(StateConnect, ErrInternal, err)
	}
	r.res.Components = len(comps)
	r.log.WithFields(logrus.Fields{"stage": StateConnect, "components": len(comps)}).Debug("components found")
	if len(comps) <= 1 {
		return nil
	}

	if err = r.paths(StateConnect); err != nil {
		return err
	}
	tree, total, err := kruskal.Link(comps, r.sp)
	if err != nil {
		if errors.Is(err, kruskal.ErrDisconnected) {
			return r.fail(StateConnect, ErrUnsolvable, err)
		}
		return r.fail(StateConnect, ErrInternal, err)
	}

	for _, me := range tree {
		added, err := r.work.AddPath(me.Path)
		if err != nil {
			return r.fail(StateConnect, ErrInternal, err)
		}
		r.res.AddedEdges += len(added)
		r.log.WithFields(logrus.Fields{
			"stage":          StateConnect,
			"from_component": me.From,
			"to_component":   me.To,
			"from_vertex":    me.U,
			"to_vertex":      me.V,
			"cost":           me.Weight,
		}).Debug("components linked")
	}
	r.res.Linked = tree

	ok, err := components.IsConnected(r.work)
	if err != nil {
		return r.fail(StateConnect, ErrInternal, err)
	}
	if !ok {
		return r.fail(StateConnect, ErrUnsolvable, kruskal.ErrDisconnected)
	}
	r.log.WithFields(logrus.Fields{"stage": StateConnect, "cost": total, "added_edges": r.res.AddedEdges}).
		Debug("working graph connected")

	return nil
}

// parityFix pairs odd vertices and materializes the matched paths.
func (r *run) parityFix() error {
	odd := r.work.OddVertices()
	r.res.Odd = odd
	r.log.WithFields(logrus.Fields{"stage": StateParityFix, "odd": len(odd)}).Debug("odd vertices found")
	if len(odd) == 0 {
		return nil
	}

	if err := r.paths(StateParityFix); err != nil {
		return err
	}
	pairs, total, err := matching.Match(r.strategy, odd, r.sp)
	if err != nil {
		return r.fail(StateParityFix, ErrInternal, err)
	}
	if err = matching.Verify(odd, pairs); err != nil {
		return r.fail(StateParityFix, ErrInternal, err)
	}

	before := r.res.AddedEdges
	for _, p := range pairs {
		added, err := r.work.AddPath(p.Path)
		if err != nil {
			return r.fail(StateParityFix, ErrInternal, err)
		}
		r.res.AddedEdges += len(added)
	}
	r.res.Matching = pairs

	if !r.work.IsEven() {
		return r.fail(StateParityFix, ErrInternal,
			fmt.Errorf("odd vertices remain after matching: %v", r.work.OddVertices()))
	}
	r.log.WithFields(logrus.Fields{
		"stage":       StateParityFix,
		"matcher":     r.strategy.String(),
		"pairs":       len(pairs),
		"added_edges": r.res.AddedEdges - before,
		"cost":        total,
	}).Debug("parity fixed")

	return nil
}

// circuit extracts the Euler circuit and prices it.
func (r *run) circuit() error {
	var opts []euler.Option
	if r.hasStart {
		opts = append(opts, euler.WithStart(r.start))
	}

	c, err := euler.Build(r.work, opts...)
	if err != nil {
		if errors.Is(err, euler.ErrStartInactive) {
			return r.fail(StateCircuit, ErrInput, err)
		}
		return r.fail(StateCircuit, ErrInternal, err)
	}

	r.res.Walk = c.Vertices
	r.res.Edges = c.Edges
	r.res.Cost = round1e9(c.Cost)
	r.log.WithFields(logrus.Fields{"stage": StateCircuit, "length": len(c.Edges)}).Debug("circuit built")

	return nil
}

// paths computes the shortest-path table of G once per run.
func (r *run) paths(stage State) error {
	if r.sp != nil {
		return nil
	}
	sp, err := matrix.FloydWarshall(r.full)
	if err != nil {
		return r.fail(stage, ErrInternal, err)
	}
	r.sp = sp

	return nil
}

// fail logs and builds the StageError for a failed stage.
func (r *run) fail(stage State, kind, err error) error {
	r.log.WithFields(logrus.Fields{"stage": stage, "next": StateFail}).WithError(err).Warn(kind.Error())

	return &StageError{Stage: stage, Kind: kind, Err: err}
}

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
