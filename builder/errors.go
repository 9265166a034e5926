package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic choice without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an invalid result.
var ErrConstructFailed = errors.New("builder: construction failed")
