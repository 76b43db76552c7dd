package multimodal

// FindEdge reports whether an edge from u to v exists in g, and returns it
// if so. It is a linear scan over u's out-edges — O(out-degree(u)), not
// an index lookup; callers on a hot path that already have an EdgeIndex
// should prefer that instead.
func FindEdge(g *Graph, u, v Vertex) (Edge, bool) {
	for it := NewOutEdgeIterator(g, u); it.Next(); {
		e := it.Edge()
		if e.Target.Equal(v) {
			return e, true
		}
	}

	return Edge{}, false
}
