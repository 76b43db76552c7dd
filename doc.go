// Package multimodal is the root of a journey-planning graph engine: a
// composite, read-only view over a road network, a collection of
// selectable public-transport sub-graphs, and a set of points of
// interest, exposed through a single vertex/edge model that generic
// shortest-path algorithms can traverse without knowing the three layers
// exist underneath.
//
// The engine is organized into focused subpackages:
//
//	road/      — the undirected, labeled road graph (the base layer)
//	transit/   — public-transport sub-graphs and their selectable Collection
//	poi/       — points of interest anchored on road sections
//	multimodal/ — the composite graph: Vertex/Edge tagged unions, iterators,
//	              VertexIndex/EdgeIndex, PT selection
//	coords/    — the coordinate-lookup collaborator (in-memory and
//	              Redis-cached implementations)
//	traverse/  — generic DFS and Dijkstra adapters over the composite graph
//	builder/   — small deterministic road.Graph fixtures for tests and demos
//	cmd/multimodal-demo/ — a CLI that assembles a fixture network and runs
//	              a shortest-path query end to end
//
// This root package carries no code of its own; it exists to document how
// the subpackages fit together.
package multimodal
