// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/routeweave/multimodal/road"
)

const minCycleNodes = 3

// Cycle returns a Constructor that builds a simple road cycle of n nodes:
// n nodes, n sections 0-1, 1-2, ..., (n-2)-(n-1), (n-1)-0.
func Cycle(n int) Constructor {
	return func(g *road.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}

		verts := make([]road.Vertex, n)
		for i := 0; i < n; i++ {
			verts[i] = g.AddNode(road.Node{DBID: cfg.dbidOffset + int64(i)})
		}

		for i := 0; i < n; i++ {
			from := verts[i]
			to := verts[(i+1)%n]

			if _, err := g.AddSection(road.Section{
				DBID:         cfg.dbidOffset + int64(i),
				From:         from,
				To:           to,
				RoadClass:    cfg.roadClass,
				LengthMeters: cfg.sectionLengthFor(),
			}); err != nil {
				return fmt.Errorf("Cycle: AddSection(%d,%d): %w", i, (i+1)%n, err)
			}
		}

		return nil
	}
}
