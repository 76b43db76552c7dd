// Package multimodal implements the composite graph abstraction at the
// heart of the journey planner: a read-only overlay of one road.Graph, a
// transit.Collection of selectable public-transport sub-graphs, and a
// poi.Collection, exposed as a single vertex/edge model that generic
// shortest-path algorithms (Dijkstra, DFS, BFS, A*) can traverse without
// knowing the underlying layers exist.
//
// Vertex and Edge are tagged unions over the three layers. Vertices,
// Edges, and VertexIndex/EdgeIndex give external callers the iteration
// and index-map contract index-addressed algorithms expect; see the
// traverse package for a generic consumer of that contract.
//
// The graph is built once by an importer (road.Graph/transit.Collection/
// poi.Collection population is outside this package's concern) and is
// read-only afterward except for PT sub-graph selection, which may change
// between traversals — see Graph.Select/SelectAll/Selection.
package multimodal
