package multimodal

import (
	"github.com/routeweave/multimodal/poi"
	"github.com/routeweave/multimodal/road"
	"github.com/routeweave/multimodal/transit"
)

// VertexIterator walks every vertex of g exactly once, in a deterministic
// order: all road vertices (by dense index), then the vertices of every
// selected PT sub-graph in Networks() order (by dense index within each),
// then every POI (by handle). It holds O(1) state and does not allocate
// per step.
//
// Usage:
//
//	for it := multimodal.NewVertexIterator(g); it.Next(); {
//	    v := it.Vertex()
//	}
type VertexIterator struct {
	g *Graph

	stage   int // 0=road, 1=pt, 2=poi, 3=done
	roadIdx int

	netOrder []string
	netPos   int
	ptIdx    int
	curNet   *netCursor

	poiIdx int

	cur Vertex
}

type netCursor struct {
	id  string
	idx int
}

// NewVertexIterator returns a fresh iterator positioned before the first
// vertex of g.
func NewVertexIterator(g *Graph) *VertexIterator {
	return &VertexIterator{
		g:        g,
		netOrder: g.pt.SelectedNetworks(),
	}
}

// Next advances the iterator and reports whether a vertex is now
// available via Vertex.
func (it *VertexIterator) Next() bool {
	for {
		switch it.stage {
		case 0:
			if it.roadIdx < it.g.roadGraph.NumNodes() {
				it.cur = NewRoadVertex(road.Vertex(it.roadIdx))
				it.roadIdx++

				return true
			}

			it.stage = 1
		case 1:
			if it.curNet == nil {
				if it.netPos >= len(it.netOrder) {
					it.stage = 2

					continue
				}

				id := it.netOrder[it.netPos]
				it.curNet = &netCursor{id: id, idx: it.g.networkIndexOf(id)}
				it.ptIdx = 0
			}

			gr, _ := it.g.pt.Graph(it.curNet.id)
			if it.ptIdx < gr.NumVertices() {
				it.cur = NewPTVertex(it.curNet.idx, it.curNet.id, transit.Vertex(it.ptIdx))
				it.ptIdx++

				return true
			}

			it.netPos++
			it.curNet = nil
		case 2:
			if it.poiIdx < it.g.pois.Len() {
				it.cur = NewPOIVertex(poi.Handle(it.poiIdx))
				it.poiIdx++

				return true
			}

			it.stage = 3

			return false
		default:
			return false
		}
	}
}

// Vertex returns the vertex the most recent Next call produced. It is
// only valid to call after a Next call that returned true.
func (it *VertexIterator) Vertex() Vertex { return it.cur }
