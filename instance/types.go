package instance

import (
	"errors"
)

var (
	// ErrMalformed indicates text that does not follow the instance grammar,
	// an unknown key, or a missing mandatory section.
	ErrMalformed = errors.New("instance: malformed input")

	// ErrVertexRange indicates a vertex id outside [1, V] in text
	// ([0, V) in an Instance).
	ErrVertexRange = errors.New("instance: vertex id out of range")

	// ErrNegativeWeight indicates a negative, NaN or infinite edge weight.
	ErrNegativeWeight = errors.New("instance: invalid edge weight")

	// ErrCountMismatch indicates a declared edge count that differs from the
	// number of edges listed.
	ErrCountMismatch = errors.New("instance: edge count mismatch")
)

// EdgeSpec is one listed edge, 0-based.
type EdgeSpec struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Instance is a parsed rural-postman instance.
type Instance struct {
	Name     string     `yaml:"name"`
	Comment  string     `yaml:"comment,omitempty"`
	Vertices int        `yaml:"vertices"`
	Required []EdgeSpec `yaml:"required"`
	Optional []EdgeSpec `yaml:"optional"`
}
