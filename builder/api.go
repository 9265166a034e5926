package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/instance"
)

// Constructor fills in with vertices and edges under cfg.
type Constructor func(in *instance.Instance, cfg builderConfig) error

// Build runs cons over a fresh Instance and validates the result.
//
// Naming: WithName wins; otherwise the constructor sets a default name.
// Complexity: that of the constructor.
func Build(cons Constructor, opts ...BuilderOption) (*instance.Instance, error) {
	if cons == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}

	cfg := newBuilderConfig(opts...)
	in := &instance.Instance{}
	if err := cons(in, cfg); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if cfg.name != "" {
		in.Name = cfg.name
	}
	in.Comment = cfg.comment

	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %v: %w", err, ErrConstructFailed)
	}

	return in, nil
}
