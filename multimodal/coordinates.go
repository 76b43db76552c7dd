package multimodal

import (
	"context"

	"github.com/routeweave/multimodal/coords"
)

// Coordinates resolves the geographic position of v by dispatching to the
// matching coords.Lookup method for v's variant, mirroring the free
// overloaded coordinates(...) functions of the original engine.
func Coordinates(ctx context.Context, v Vertex, g *Graph, lk coords.Lookup) (coords.Point2D, error) {
	switch v.Kind {
	case KindRoad:
		return lk.RoadNodeCoordinates(ctx, g.roadGraph.Node(v.RoadVertex).DBID)
	case KindPublicTransport:
		gr, ok := g.pt.Graph(v.NetworkID)
		if !ok {
			return coords.Point2D{}, ErrUnknownNetwork
		}

		return lk.PTStopCoordinates(ctx, gr.Stop(v.PTVertex).DBID)
	default: // KindPoi
		return lk.POICoordinates(ctx, g.pois.At(v.POIHandle).DBID)
	}
}
