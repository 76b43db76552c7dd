// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/routeweave/multimodal/road"
)

const minGridDim = 1

// Grid returns a Constructor that builds an rows×cols 4-neighborhood road
// grid, row-major: node (r,c) has DBID cfg.dbidOffset + r*cols + c, and a
// section to its east neighbor (r,c+1) and its south neighbor (r+1,c)
// when those exist, emitted in row-major, east-before-south order. The
// four corner nodes are flagged IsBifurcation, since a grid corner is
// where a one-way split would occur in a real city block layout.
func Grid(rows, cols int) Constructor {
	return func(g *road.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d cols=%d < min=%d: %w", rows, cols, minGridDim, ErrTooFewVertices)
		}

		corner := func(idx int) bool {
			return idx == 0 || idx == cols-1 || idx == (rows-1)*cols || idx == rows*cols-1
		}

		verts := make([]road.Vertex, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				idx := r*cols + c
				verts[idx] = g.AddNode(road.Node{
					DBID:          cfg.dbidOffset + int64(idx),
					IsBifurcation: corner(idx),
				})
			}
		}

		nextSectionID := int64(0)
		addSection := func(a, b road.Vertex) error {
			_, err := g.AddSection(road.Section{
				DBID:         cfg.dbidOffset + nextSectionID,
				From:         a,
				To:           b,
				RoadClass:    cfg.roadClass,
				LengthMeters: cfg.sectionLengthFor(),
			})
			nextSectionID++

			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				idx := r*cols + c

				if c+1 < cols {
					if err := addSection(verts[idx], verts[idx+1]); err != nil {
						return fmt.Errorf("Grid: AddSection east of (%d,%d): %w", r, c, err)
					}
				}

				if r+1 < rows {
					if err := addSection(verts[idx], verts[idx+cols]); err != nil {
						return fmt.Errorf("Grid: AddSection south of (%d,%d): %w", r, c, err)
					}
				}
			}
		}

		return nil
	}
}
