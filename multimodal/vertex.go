package multimodal

import (
	"fmt"

	"github.com/routeweave/multimodal/poi"
	"github.com/routeweave/multimodal/road"
	"github.com/routeweave/multimodal/transit"
)

// Kind tags the three variants a composite Vertex can be.
type Kind int

const (
	KindRoad Kind = iota
	KindPublicTransport
	KindPoi
)

// Vertex is a tagged union of a road vertex, a public-transport stop (in
// one sub-graph of the collection), or a POI. It is a plain comparable
// value — equality and ordering are defined over its fields directly, with
// no pointer identity involved, so a Vertex survives being copied, used as
// a map key, or stored in a slice.
//
// NetworkIndex is the PT sub-graph's position in the owning Collection's
// deterministic Networks() order; it is filled in whenever a Vertex is
// constructed so that Less/Equal never need to consult the graph. It is
// meaningless (zero) for the Road and Poi variants.
type Vertex struct {
	Kind Kind

	RoadVertex road.Vertex

	NetworkIndex int
	NetworkID    string
	PTVertex     transit.Vertex

	POIHandle poi.Handle
}

// NewRoadVertex returns the composite vertex wrapping road vertex v.
func NewRoadVertex(v road.Vertex) Vertex {
	return Vertex{Kind: KindRoad, RoadVertex: v}
}

// NewPTVertex returns the composite vertex wrapping stop v of the PT
// sub-graph at position networkIndex (networkID) in the collection.
func NewPTVertex(networkIndex int, networkID string, v transit.Vertex) Vertex {
	return Vertex{Kind: KindPublicTransport, NetworkIndex: networkIndex, NetworkID: networkID, PTVertex: v}
}

// NewPOIVertex returns the composite vertex wrapping POI handle h.
func NewPOIVertex(h poi.Handle) Vertex {
	return Vertex{Kind: KindPoi, POIHandle: h}
}

// Equal reports whether v and other name the same vertex: equal variant
// tag and equal identifying pair, per spec.
func (v Vertex) Equal(other Vertex) bool {
	return v == other
}

// Less defines the strict total order over composite vertices:
// lexicographic by (variant tag, graph handle, local descriptor).
func (v Vertex) Less(other Vertex) bool {
	if v.Kind != other.Kind {
		return v.Kind < other.Kind
	}

	switch v.Kind {
	case KindRoad:
		return v.RoadVertex < other.RoadVertex
	case KindPublicTransport:
		if v.NetworkIndex != other.NetworkIndex {
			return v.NetworkIndex < other.NetworkIndex
		}

		return v.PTVertex < other.PTVertex
	default: // KindPoi
		return v.POIHandle < other.POIHandle
	}
}

// String renders v using its dense descriptor, for diagnostics where no
// Graph is in scope to resolve the underlying database identity. Callers
// that need the "R<id>"/"PT<id>"/"POI<id>" rendering (database ids, not
// dense indices) should use Graph.VertexLabel instead.
func (v Vertex) String() string {
	switch v.Kind {
	case KindRoad:
		return fmt.Sprintf("R#%d", v.RoadVertex)
	case KindPublicTransport:
		return fmt.Sprintf("PT#%s:%d", v.NetworkID, v.PTVertex)
	default:
		return fmt.Sprintf("POI#%d", v.POIHandle)
	}
}
