// Package builder generates rural-postman instances for tests, benchmarks
// and the "postman generate" command.
//
// A Constructor fills an *instance.Instance; Build applies one constructor
// under a resolved builderConfig:
//
//	in, err := builder.Build(builder.Grid(4, 5),
//		builder.WithSeed(7),
//		builder.WithRequiredRatio(0.4),
//		builder.WithWeightFn(builder.UniformIntWeightFn(1, 9)),
//	)
//
// Constructors:
//
//   - Grid(rows, cols)     street grid, 4-neighbourhood.
//   - Cycle(n)             ring 0-1-…-(n-1)-0.
//   - Complete(n)          K_n.
//   - RandomSparse(n, p)   random spanning tree plus each further pair with
//     probability p; the full graph is always connected.
//
// Every generated edge is required with probability WithRequiredRatio
// (default 1: every edge required) and optional otherwise. Ratios strictly
// between 0 and 1, and RandomSparse, need an RNG (WithSeed or WithRand);
// without one Build fails with ErrNeedRandSource.
//
// Weights come from a WeightFn. The stock functions return integral values,
// which keeps shortest-path sums exact in float64.
//
// Option constructors panic on meaningless input; constructors themselves
// never panic and return sentinel errors wrapped with context.
package builder
