package multimodal

import "fmt"

// ConnectionType tags the layer transition a composite Edge represents.
// The numeric values are the module's only wire-level contract.
type ConnectionType int

const (
	Road2Road            ConnectionType = 0
	Road2Transport       ConnectionType = 1
	Transport2Road       ConnectionType = 2
	Transport2Transport  ConnectionType = 3
	Road2Poi             ConnectionType = 4
	Poi2Road             ConnectionType = 5
	UnknownConnection    ConnectionType = -1
)

// Edge is a composite edge: an ordered pair of composite vertices. It
// carries no weight or policy data of its own — those are supplied by the
// caller as external property maps, per the graph's non-goals.
type Edge struct {
	Source, Target Vertex
}

// ConnectionType derives the edge's layer transition from the variants of
// its endpoints. A pair that normal iteration never produces (e.g.
// Poi-to-Poi) reports UnknownConnection; callers must treat that as a
// signal something upstream is broken, never as a valid traversal step.
func (e Edge) ConnectionType() ConnectionType {
	switch e.Source.Kind {
	case KindRoad:
		switch e.Target.Kind {
		case KindRoad:
			return Road2Road
		case KindPublicTransport:
			return Road2Transport
		default:
			return Road2Poi
		}
	case KindPublicTransport:
		switch e.Target.Kind {
		case KindRoad:
			return Transport2Road
		case KindPublicTransport:
			return Transport2Transport
		default:
			return UnknownConnection
		}
	default: // KindPoi
		if e.Target.Kind == KindRoad {
			return Poi2Road
		}

		return UnknownConnection
	}
}

// String renders e as "<connection-type> (<source>,<target>)", using
// Vertex.String for the endpoints (dense-descriptor form; see
// Graph.EdgeLabel for the database-id form).
func (e Edge) String() string {
	return fmt.Sprintf("%s (%s,%s)", e.ConnectionType(), e.Source, e.Target)
}

// String names the connection type, matching the original engine's
// stream-output labels.
func (c ConnectionType) String() string {
	switch c {
	case Road2Road:
		return "Road2Road"
	case Road2Transport:
		return "Road2Transport"
	case Transport2Road:
		return "Transport2Road"
	case Transport2Transport:
		return "Transport2Transport"
	case Road2Poi:
		return "Road2Poi"
	case Poi2Road:
		return "Poi2Road"
	default:
		return "UnknownConnection"
	}
}
