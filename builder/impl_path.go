// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/routeweave/multimodal/road"
)

const minPathNodes = 2

// Path returns a Constructor that builds a simple road path of n nodes:
// n nodes, n-1 sections 0-1, 1-2, ..., (n-2)-(n-1). Each section's length
// comes from the builder configuration: one meter by default, overridden
// by WithSectionLength and jittered by WithSeed.
func Path(n int) Constructor {
	return func(g *road.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}

		verts := make([]road.Vertex, n)
		for i := 0; i < n; i++ {
			verts[i] = g.AddNode(road.Node{DBID: cfg.dbidOffset + int64(i)})
		}

		for i := 1; i < n; i++ {
			if _, err := g.AddSection(road.Section{
				DBID:         cfg.dbidOffset + int64(i),
				From:         verts[i-1],
				To:           verts[i],
				RoadClass:    cfg.roadClass,
				LengthMeters: cfg.sectionLengthFor(),
			}); err != nil {
				return fmt.Errorf("Path: AddSection(%d,%d): %w", i-1, i, err)
			}
		}

		return nil
	}
}
