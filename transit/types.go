// Package transit models one public-transport network as a directed graph
// of stops and sections, plus a Collection keying several such networks by
// id with a mutable selection subset.
//
// Like road.Graph, Vertex and EdgeID are dense slice indices so that the
// multimodal package can build index-addressed property maps directly.
package transit

import (
	"errors"
	"sync"

	"github.com/routeweave/multimodal/road"
)

// ErrImportInvariant indicates a PT stop references a road section that
// does not exist in the road graph it was imported against.
var ErrImportInvariant = errors.New("transit: import invariant violated")

// ErrUnknownNetwork indicates an operation referenced a network id not
// present in the Collection.
var ErrUnknownNetwork = errors.New("transit: unknown network id")

// Vertex is a dense index into a Graph's stop slice.
type Vertex int

// EdgeID is a dense index into a Graph's section slice.
type EdgeID int

// Stop is a PT vertex: an identity plus a back-reference to the road
// section it lies on. The back-reference is non-owning; ownership of the
// section stays with the road.Graph.
type Stop struct {
	DBID int64

	// RoadSection is the road edge this stop is anchored on.
	RoadSection road.EdgeID
}

// Section is a directed PT edge between two stops of the same Graph.
type Section struct {
	DBID int64

	From, To Vertex

	// Mode names the transport mode this section belongs to (e.g. "bus",
	// "tram"); attributes beyond that are left to the caller's routing
	// policy, per the composite graph's non-goals around cost/restriction
	// models.
	Mode string

	TravelTimeSeconds float64
}

// Graph is one public-transport network's stops and inter-stop sections.
type Graph struct {
	mu sync.RWMutex

	stops    []Stop
	sections []Section

	// outEdges[v] lists the EdgeIDs outgoing from stop v, in insertion
	// order — this order is surfaced verbatim by the composite's
	// Transport→Transport out-edges.
	outEdges [][]EdgeID
}

// NewGraph returns an empty PT sub-graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddStop appends a Stop and returns its dense Vertex.
func (g *Graph) AddStop(s Stop) Vertex {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stops = append(g.stops, s)
	g.outEdges = append(g.outEdges, nil)

	return Vertex(len(g.stops) - 1)
}

// AddSection appends a directed Section from s.From to s.To and returns
// its dense EdgeID. Both endpoints must already exist.
func (g *Graph) AddSection(s Section) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.stops)
	if int(s.From) < 0 || int(s.From) >= n || int(s.To) < 0 || int(s.To) >= n {
		return 0, errors.New("transit: section endpoint out of range")
	}

	g.sections = append(g.sections, s)
	id := EdgeID(len(g.sections) - 1)
	g.outEdges[s.From] = append(g.outEdges[s.From], id)

	return id, nil
}

// NumVertices returns the number of stops. Complexity: O(1).
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.stops)
}

// NumEdges returns the number of sections. Complexity: O(1).
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.sections)
}

// Stop returns the Stop bundled at v.
func (g *Graph) Stop(v Vertex) Stop {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.stops[v]
}

// Section returns the Section bundled at e.
func (g *Graph) Section(e EdgeID) Section {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sections[e]
}

// OutEdges returns the EdgeIDs outgoing from v, in insertion order. The
// returned slice must not be mutated by the caller.
func (g *Graph) OutEdges(v Vertex) []EdgeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.outEdges[v]
}

// OutDegree returns len(OutEdges(v)) without allocating.
func (g *Graph) OutDegree(v Vertex) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.outEdges[v])
}

// Validate checks that every stop's RoadSection exists in rg.
func (g *Graph) Validate(rg *road.Graph) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := rg.NumSections()
	for _, s := range g.stops {
		if int(s.RoadSection) < 0 || int(s.RoadSection) >= n {
			return ErrImportInvariant
		}
	}

	return nil
}
