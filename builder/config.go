package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/postman/instance"
)

// builderConfig aggregates every builder knob. Defaults:
//
//	rng           = nil  (deterministic unless seeded)
//	weightFn      = DefaultWeightFn
//	requiredRatio = 1
type builderConfig struct {
	rng           *rand.Rand
	weightFn      WeightFn
	requiredRatio float64
	name          string
	comment       string
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn, requiredRatio: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addEdge draws the weight and the required flag of {u,v} and appends it to
// the matching list of in.
func (c builderConfig) addEdge(in *instance.Instance, u, v int) error {
	w := c.weightFn(c.rng)
	e := instance.EdgeSpec{From: u, To: v, Weight: w}

	required := true
	switch {
	case c.requiredRatio >= 1:
	case c.requiredRatio <= 0:
		required = false
	case c.rng == nil:
		return fmt.Errorf("required ratio %g: %w", c.requiredRatio, ErrNeedRandSource)
	default:
		required = c.rng.Float64() < c.requiredRatio
	}

	if required {
		in.Required = append(in.Required, e)
	} else {
		in.Optional = append(in.Optional, e)
	}

	return nil
}
