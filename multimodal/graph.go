package multimodal

import (
	"fmt"
	"sync"

	"github.com/routeweave/multimodal/poi"
	"github.com/routeweave/multimodal/road"
	"github.com/routeweave/multimodal/transit"
)

// Graph is the composite, read-only multimodal view. It owns exactly one
// road.Graph, one transit.Collection, and one poi.Collection — ownership
// stays with whoever built those; Graph only holds references.
//
// Graph is safe for concurrent read-only use (traversal, indexing) from
// multiple goroutines. The only supported mutation after construction is
// PT selection (Select/SelectAll), and the caller is responsible for not
// mutating selection while another goroutine iterates.
type Graph struct {
	roadGraph *road.Graph
	pt        *transit.Collection
	pois      *poi.Collection

	netOnce         sync.Once
	netOrder        []string
	netIndexOf      map[string]int
	netVertexPrefix []int // len(netOrder)+1; prefix sum over ALL networks

	epochMu sync.Mutex
	epoch   uint64

	edgeIdxMu    sync.Mutex
	edgeIdxEpoch uint64
	edgeIdxMap   map[Edge]int
}

// NewGraph composes rg, pt, and pois into a single multimodal view. The PT
// collection's network set is assumed frozen from this point on: networks
// may still be selected/deselected, but no new network should be Add()ed
// to pt after NewGraph is called, since the index maps cache network
// order and sizes the first time they are needed.
func NewGraph(rg *road.Graph, pt *transit.Collection, pois *poi.Collection) *Graph {
	return &Graph{
		roadGraph: rg,
		pt:        pt,
		pois:      pois,
	}
}

// Vertices returns a fresh iterator over every vertex of g, in a fixed
// deterministic order. Satisfies traverse.IndexedGraph.
func (g *Graph) Vertices() *VertexIterator { return NewVertexIterator(g) }

// OutEdges returns a fresh iterator over v's out-edges, in a fixed
// deterministic order. Satisfies traverse.IndexedGraph.
func (g *Graph) OutEdges(v Vertex) *OutEdgeIterator { return NewOutEdgeIterator(g, v) }

// Road returns the underlying road graph.
func (g *Graph) Road() *road.Graph { return g.roadGraph }

// PublicTransport returns the underlying PT sub-graph collection.
func (g *Graph) PublicTransport() *transit.Collection { return g.pt }

// POIs returns the underlying POI collection.
func (g *Graph) POIs() *poi.Collection { return g.pois }

func (g *Graph) ensureNetCache() {
	g.netOnce.Do(func() {
		g.netOrder = g.pt.Networks()
		g.netIndexOf = make(map[string]int, len(g.netOrder))
		g.netVertexPrefix = make([]int, len(g.netOrder)+1)

		for i, id := range g.netOrder {
			g.netIndexOf[id] = i

			gr, _ := g.pt.Graph(id)
			g.netVertexPrefix[i+1] = g.netVertexPrefix[i] + gr.NumVertices()
		}
	})
}

// networkIndexOf returns the deterministic position of networkID in the
// collection's Networks() order.
func (g *Graph) networkIndexOf(networkID string) int {
	g.ensureNetCache()

	idx, ok := g.netIndexOf[networkID]
	assertf(ok, "unknown PT network %q", networkID)

	return idx
}

func (g *Graph) bumpEpoch() {
	g.epochMu.Lock()
	g.epoch++
	g.epochMu.Unlock()
}

func (g *Graph) currentEpoch() uint64 {
	g.epochMu.Lock()
	defer g.epochMu.Unlock()

	return g.epoch
}

// SelectAll makes every registered PT sub-graph participate in iteration
// and counting. Complexity: O(number of networks).
func (g *Graph) SelectAll() {
	g.pt.SelectAll()
	g.bumpEpoch()
}

// Select restricts participation to exactly the named PT sub-graphs.
// Complexity: O(len(ids)).
func (g *Graph) Select(ids map[string]struct{}) {
	g.pt.Select(ids)
	g.bumpEpoch()
}

// Selection returns the currently selected network ids.
func (g *Graph) Selection() map[string]struct{} {
	return g.pt.Selection()
}

// NumVertices is the closed-form vertex count: road vertices plus
// the vertex counts of selected PT sub-graphs plus the POI count.
func (g *Graph) NumVertices() int {
	n := g.roadGraph.NumNodes()

	for _, id := range g.pt.SelectedNetworks() {
		gr, _ := g.pt.Graph(id)
		n += gr.NumVertices()
	}

	return n + g.pois.Len()
}

// NumEdges is the closed-form edge count, chosen so that it always
// equals the length of a full edge-iterator pass: 2×road sections (each undirected
// section surfaces once per endpoint) + per selected PT sub-graph (its own
// edges + 4× its vertex count, for the two Transport→Road and two
// Road→Transport edges each stop contributes) + 4×POI count (2 Poi→Road +
// 2 Road→Poi per POI).
func (g *Graph) NumEdges() int {
	n := 2 * g.roadGraph.NumSections()

	for _, id := range g.pt.SelectedNetworks() {
		gr, _ := g.pt.Graph(id)
		n += gr.NumEdges() + 4*gr.NumVertices()
	}

	return n + 4*g.pois.Len()
}

// OutDegree returns the out-degree of v without iterating its out-edges,
// using the same closed forms NumEdges relies on.
func (g *Graph) OutDegree(v Vertex) int {
	switch v.Kind {
	case KindRoad:
		sum := 0
		for _, eid := range g.roadGraph.IncidentEdges(v.RoadVertex) {
			sec := g.roadGraph.Section(eid)

			for _, ref := range sec.Stops {
				if g.pt.IsSelected(ref.NetworkID) {
					sum++
				}
			}

			sum += len(sec.POIs) + 1
		}

		return sum
	case KindPublicTransport:
		gr, ok := g.pt.Graph(v.NetworkID)
		assertf(ok, "vertex names unknown network %q", v.NetworkID)

		return gr.OutDegree(v.PTVertex) + 2
	default: // KindPoi
		return 2
	}
}

// VertexIndexSpace returns the size of the index space VertexIndex maps
// into: road vertices, plus the stop counts of EVERY registered PT
// sub-graph regardless of selection, plus POIs. Because VertexIndex is
// selection-independent, this bound — not the selection-dependent
// NumVertices — is the right array size for an index-keyed algorithm
// (e.g. traverse.Dijkstra's distance slice) that must stay valid across a
// Select/SelectAll call made between allocation and use.
func (g *Graph) VertexIndexSpace() int {
	g.ensureNetCache()

	return g.roadGraph.NumNodes() + g.netVertexPrefix[len(g.netOrder)] + g.pois.Len()
}

// VertexIndex returns a dense index for v in [0, VertexIndexSpace()),
// independent of the current PT selection: it counts ALL
// registered PT sub-graphs regardless of whether they are currently
// selected, so the mapping stays stable across Select/SelectAll calls.
// Road vertices come first, then every network's stops in Networks()
// order, then POIs — the prefix sums are computed once and cached.
func (g *Graph) VertexIndex(v Vertex) int {
	switch v.Kind {
	case KindRoad:
		return int(v.RoadVertex)
	case KindPublicTransport:
		g.ensureNetCache()
		base := g.roadGraph.NumNodes() + g.netVertexPrefix[v.NetworkIndex]

		return base + int(v.PTVertex)
	default: // KindPoi
		g.ensureNetCache()
		base := g.roadGraph.NumNodes() + g.netVertexPrefix[len(g.netOrder)]

		return base + int(v.POIHandle)
	}
}

// EdgeIndex returns a dense index for e in [0, NumEdges()), valid only
// until the next Select/SelectAll call (the mapping is selection-
// dependent, since edges(g) itself depends on which PT sub-graphs are
// selected — see DESIGN.md for the chosen mapping). The map is rebuilt
// lazily from a full edges(g) pass the first time it's needed after a
// selection change, then reused — O(E) amortized to O(1) per lookup
// between selection changes.
func (g *Graph) EdgeIndex(e Edge) int {
	g.edgeIdxMu.Lock()
	defer g.edgeIdxMu.Unlock()

	if g.edgeIdxMap == nil || g.edgeIdxEpoch != g.currentEpoch() {
		g.edgeIdxMap = make(map[Edge]int, g.NumEdges())

		i := 0
		for it := NewEdgeIterator(g); it.Next(); i++ {
			g.edgeIdxMap[it.Edge()] = i
		}

		g.edgeIdxEpoch = g.currentEpoch()
	}

	idx, ok := g.edgeIdxMap[e]
	assertf(ok, "edge %s is not a member of the current selection", e)

	return idx
}

// Source returns e.Source. Provided as a free accessor to mirror the
// shape external index-addressed algorithms expect (source(e, g)).
func (g *Graph) Source(e Edge) Vertex { return e.Source }

// Target returns e.Target.
func (g *Graph) Target(e Edge) Vertex { return e.Target }

// VertexLabel renders v using the database identity of the underlying
// entity (not its dense index): "R<id>", "PT<id>", "POI<id>".
func (g *Graph) VertexLabel(v Vertex) string {
	switch v.Kind {
	case KindRoad:
		return fmt.Sprintf("R%d", g.roadGraph.Node(v.RoadVertex).DBID)
	case KindPublicTransport:
		gr, ok := g.pt.Graph(v.NetworkID)
		assertf(ok, "vertex names unknown network %q", v.NetworkID)

		return fmt.Sprintf("PT%d", gr.Stop(v.PTVertex).DBID)
	default: // KindPoi
		return fmt.Sprintf("POI%d", g.pois.At(v.POIHandle).DBID)
	}
}

// EdgeLabel renders e as "<connection-type> (<source>,<target>)" using
// VertexLabel for the endpoints, matching the original engine's
// stream-output format exactly.
func (g *Graph) EdgeLabel(e Edge) string {
	return fmt.Sprintf("%s (%s,%s)", e.ConnectionType(), g.VertexLabel(e.Source), g.VertexLabel(e.Target))
}
