// Package road models the road layer of the multimodal network: an
// undirected graph of junctions (Node) and street segments (Section).
//
// Vertex and EdgeID are dense indices into internal slices, not opaque
// handles — this is what lets the multimodal package build O(1)
// index-addressed property maps over the composite graph without an
// extra translation table.
package road
