package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh RNG seeded with seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithRequiredRatio sets the probability that a generated edge is required.
// Panics outside [0,1].
func WithRequiredRatio(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithRequiredRatio(%g) not in [0,1]", p))
	}

	return func(c *builderConfig) { c.requiredRatio = p }
}

// WithName sets the instance name. An empty name keeps the constructor's
// default ("grid-4x5", "sparse-30", …).
func WithName(name string) BuilderOption {
	return func(c *builderConfig) { c.name = name }
}

// WithComment sets the instance comment.
func WithComment(comment string) BuilderOption {
	return func(c *builderConfig) { c.comment = comment }
}
