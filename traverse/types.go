// Package traverse implements generic graph traversal — DFS and
// Dijkstra — against the multimodal package's vertices/out_edges/
// VertexIndex contract rather than against multimodal.Graph directly.
// Both algorithms key their visited/distance state by VertexIndex values
// in a plain slice rather than a map keyed on multimodal.Vertex, so the
// composite graph's dense index does the work a string or pointer key
// would otherwise need a map for.
//
// Complexity:
//
//   - DFS:      O(V + E) time, O(V) space.
//   - Dijkstra: O((V + E) log V) time, O(V + E) space, using a
//     lazy-decrease-key binary heap.
package traverse

import (
	"errors"
	"math"

	"github.com/routeweave/multimodal/multimodal"
)

// Sentinel errors returned by this package's algorithms.
var (
	// ErrNilGraph indicates a nil IndexedGraph was passed to an algorithm.
	ErrNilGraph = errors.New("traverse: graph is nil")

	// ErrNegativeWeight indicates a weight function returned a negative
	// value; Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("traverse: negative edge weight encountered")
)

// IndexedGraph is the contract traverse's algorithms need from a graph:
// enumerable vertices and out-edges, plus a dense VertexIndex. It is
// satisfied by *multimodal.Graph.
type IndexedGraph interface {
	// VertexIndexSpace is the array size an index-keyed algorithm must
	// allocate: it bounds VertexIndex's range and stays valid across a
	// selection change, unlike NumVertices.
	VertexIndexSpace() int
	VertexIndex(v multimodal.Vertex) int
	Vertices() *multimodal.VertexIterator
	OutEdges(v multimodal.Vertex) *multimodal.OutEdgeIterator
}

// WeightFunc assigns a non-negative integer weight to an edge. A false
// second return marks the edge impassable — Dijkstra skips it entirely —
// since the composite graph carries no weights or restriction policy of
// its own.
type WeightFunc func(multimodal.Edge) (weight int64, ok bool)

// Result is the outcome of a Dijkstra run: distances and, if requested,
// predecessors, both keyed by VertexIndex value.
type Result struct {
	// Dist[i] is the shortest distance from the source to the vertex with
	// VertexIndex i, or math.MaxInt64 if unreachable.
	Dist []int64

	// Prev[i] is the VertexIndex of the predecessor of the vertex with
	// VertexIndex i on its shortest path, or -1 if i is the source or
	// unreachable. Nil unless returnPath was requested.
	Prev []int64

	// indexToVertex lets callers recover the multimodal.Vertex for a
	// given index without re-walking the graph.
	indexToVertex []multimodal.Vertex
}

// VertexAt returns the multimodal.Vertex that owns VertexIndex i.
func (r *Result) VertexAt(i int) multimodal.Vertex { return r.indexToVertex[i] }

const unreachable = int64(math.MaxInt64)

// noPredecessor marks a slot in Result.Prev with no predecessor.
const noPredecessor = int64(-1)
