package instance

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/postman/core"
)

// Validate checks an Instance built in code (Parse already guarantees it).
func (in *Instance) Validate() error {
	if in.Vertices < 0 {
		return errors.Wrapf(ErrMalformed, "vertex count %d", in.Vertices)
	}
	for _, list := range []struct {
		name  string
		edges []EdgeSpec
	}{{"required", in.Required}, {"optional", in.Optional}} {
		for i, e := range list.edges {
			if e.From < 0 || e.From >= in.Vertices || e.To < 0 || e.To >= in.Vertices {
				return errors.Wrapf(ErrVertexRange, "%s edge %d (%d, %d) with %d vertices", list.name, i, e.From, e.To, in.Vertices)
			}
			if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
				return errors.Wrapf(ErrNegativeWeight, "%s edge %d weight %v", list.name, i, e.Weight)
			}
		}
	}

	return nil
}

// Graphs builds the full graph G (required edges first, flagged Required,
// then optional edges) and the required-edge subgraph Gr. Edge IDs in G
// follow list order; Gr is renumbered densely.
func (in *Instance) Graphs() (required, full *core.Graph, err error) {
	if err = in.Validate(); err != nil {
		return nil, nil, err
	}

	full = core.NewGraph(in.Vertices)
	for _, e := range in.Required {
		if _, err = full.AddEdge(e.From, e.To, e.Weight, core.WithRequired()); err != nil {
			return nil, nil, errors.Wrap(err, "required edge")
		}
	}
	for _, e := range in.Optional {
		if _, err = full.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, nil, errors.Wrap(err, "optional edge")
		}
	}
	if required, err = full.Subgraph(func(e *core.Edge) bool { return e.Required }); err != nil {
		return nil, nil, errors.Wrap(err, "required subgraph")
	}

	return required, full, nil
}
