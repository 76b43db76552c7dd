// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/routeweave/multimodal/road"
)

// Constructor applies a deterministic mutation to a road.Graph using the
// resolved builderConfig. Constructors validate their parameters early
// and return sentinel errors; they never panic at runtime.
type Constructor func(g *road.Graph, cfg builderConfig) error

// BuildGraph creates a new road.Graph, resolves the builder configuration
// from opts, and applies every constructor in order. The first
// constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*road.Graph, error) {
	g := road.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}

		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
