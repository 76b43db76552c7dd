// Package coords provides the coordinate-lookup collaborator the
// multimodal package dispatches to when a caller needs the geographic
// position of a vertex. The multimodal graph itself carries no geometry —
// lookups are delegated to whatever backs the importer's SQL tables, here
// stood in for by MapStore, optionally wrapped in a read-through cache by
// CachedStore.
package coords

import (
	"context"
	"errors"
)

// ErrDataMissing indicates a Lookup implementation has no coordinates for
// the requested id. Lookup implementations return an error that wraps it,
// so callers detect a miss with errors.Is.
var ErrDataMissing = errors.New("coords: no coordinates for id")

// Point2D is a planar coordinate pair. The unit and projection are left to
// the importer; this package never interprets the values.
type Point2D struct {
	X, Y float64
}

// Lookup resolves the coordinates of an entity by its database id. The
// three methods mirror the three entity kinds a composite Vertex can
// name: road node, PT stop, POI.
type Lookup interface {
	RoadNodeCoordinates(ctx context.Context, id int64) (Point2D, error)
	PTStopCoordinates(ctx context.Context, id int64) (Point2D, error)
	POICoordinates(ctx context.Context, id int64) (Point2D, error)
}
