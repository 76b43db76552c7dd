package multimodal

import (
	"github.com/routeweave/multimodal/poi"
	"github.com/routeweave/multimodal/road"
	"github.com/routeweave/multimodal/transit"
)

// OutEdgeIterator walks the out-edges of a single vertex in a fixed,
// deterministic order, holding O(1) state and advancing without
// allocating:
//
//   - Road vertex v: a cursor over v's incident road sections (in
//     road.Graph.IncidentEdges order), and within each section a phase
//     (0=stops, 1=pois, 2=the section's far endpoint) plus monotonic
//     indices into that section's Stops and POIs lists. Road2Transport
//     edges go to a section's stops belonging to a currently selected PT
//     sub-graph (non-selected stops skipped), then Road2Poi edges to
//     that section's POIs, then the single Road2Road edge to the
//     section's other endpoint.
//   - PublicTransport vertex v: a three-state phase (0,1,2) — the two
//     Transport2Road edges to the home section's From and To road
//     vertices, then a cursor over v's PT out-edges (in
//     transit.Graph.OutEdges order) for the Transport2Transport edges.
//   - Poi vertex v: a two-state phase for the Poi2Road edges to the
//     POI's home section's From and To road vertices.
type OutEdgeIterator struct {
	g *Graph
	v Vertex

	// road cursor state.
	incident []road.EdgeID
	edgeIdx  int
	subPhase int // 0=stops, 1=pois, 2=road2road
	stopIdx  int
	poiIdx   int

	// PT cursor state.
	ptPhase   int // 0=from, 1=to, 2=internal
	ptOut     []transit.EdgeID
	ptGraph   *transit.Graph
	ptEdgeIdx int

	// POI cursor state.
	poiPhase int // 0=from, 1=to

	fromV, toV road.Vertex

	cur Edge
}

// NewOutEdgeIterator returns an iterator positioned before the first
// out-edge of v in g.
func NewOutEdgeIterator(g *Graph, v Vertex) *OutEdgeIterator {
	it := &OutEdgeIterator{g: g, v: v}

	switch v.Kind {
	case KindRoad:
		it.incident = g.roadGraph.IncidentEdges(v.RoadVertex)
	case KindPublicTransport:
		gr, ok := g.pt.Graph(v.NetworkID)
		assertf(ok, "vertex names unknown network %q", v.NetworkID)

		stop := gr.Stop(v.PTVertex)
		sec := g.roadGraph.Section(stop.RoadSection)
		it.fromV, it.toV = sec.From, sec.To
		it.ptGraph = gr
		it.ptOut = gr.OutEdges(v.PTVertex)
	default: // KindPoi
		p := g.pois.At(v.POIHandle)
		sec := g.roadGraph.Section(p.Section)
		it.fromV, it.toV = sec.From, sec.To
	}

	return it
}

// Next advances the iterator and reports whether an edge is now
// available via Edge.
func (it *OutEdgeIterator) Next() bool {
	switch it.v.Kind {
	case KindRoad:
		return it.nextRoad()
	case KindPublicTransport:
		return it.nextPT()
	default:
		return it.nextPoi()
	}
}

// Edge returns the out-edge the most recent Next call produced.
func (it *OutEdgeIterator) Edge() Edge { return it.cur }

func (it *OutEdgeIterator) nextRoad() bool {
	for it.edgeIdx < len(it.incident) {
		eid := it.incident[it.edgeIdx]
		sec := it.g.roadGraph.Section(eid)

		switch it.subPhase {
		case 0:
			for it.stopIdx < len(sec.Stops) {
				ref := sec.Stops[it.stopIdx]
				it.stopIdx++

				if !it.g.pt.IsSelected(ref.NetworkID) {
					continue
				}

				netIdx := it.g.networkIndexOf(ref.NetworkID)
				it.cur = Edge{Source: it.v, Target: NewPTVertex(netIdx, ref.NetworkID, transit.Vertex(ref.StopIndex))}

				return true
			}

			it.subPhase = 1
		case 1:
			if it.poiIdx < len(sec.POIs) {
				ref := sec.POIs[it.poiIdx]
				it.poiIdx++
				it.cur = Edge{Source: it.v, Target: NewPOIVertex(poi.Handle(ref.Index))}

				return true
			}

			it.subPhase = 2
		default: // 2
			it.cur = Edge{Source: it.v, Target: NewRoadVertex(sec.Other(it.v.RoadVertex))}

			it.edgeIdx++
			it.subPhase = 0
			it.stopIdx = 0
			it.poiIdx = 0

			return true
		}
	}

	return false
}

func (it *OutEdgeIterator) nextPT() bool {
	switch it.ptPhase {
	case 0:
		it.ptPhase = 1
		it.cur = Edge{Source: it.v, Target: NewRoadVertex(it.fromV)}

		return true
	case 1:
		it.ptPhase = 2
		it.cur = Edge{Source: it.v, Target: NewRoadVertex(it.toV)}

		return true
	default: // 2
		if it.ptEdgeIdx >= len(it.ptOut) {
			return false
		}

		tsec := it.ptGraph.Section(it.ptOut[it.ptEdgeIdx])
		it.ptEdgeIdx++
		it.cur = Edge{Source: it.v, Target: NewPTVertex(it.v.NetworkIndex, it.v.NetworkID, tsec.To)}

		return true
	}
}

func (it *OutEdgeIterator) nextPoi() bool {
	switch it.poiPhase {
	case 0:
		it.poiPhase = 1
		it.cur = Edge{Source: it.v, Target: NewRoadVertex(it.fromV)}

		return true
	case 1:
		it.poiPhase = 2
		it.cur = Edge{Source: it.v, Target: NewRoadVertex(it.toV)}

		return true
	default:
		return false
	}
}
