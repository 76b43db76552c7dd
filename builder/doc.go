// Package builder assembles small, deterministic road.Graph fixtures for
// tests and demos: Path, Cycle, and Grid. A Constructor closure type, a
// single BuildGraph orchestrator, and functional BuilderOptions resolved
// into an immutable builderConfig, narrowed to the three topologies the
// multimodal fixtures actually need; PT sub-graphs and POIs are layered
// on top by the caller once the road skeleton exists.
package builder
