package multimodal

// EdgeIterator walks every edge of g exactly once: it drives a
// VertexIterator and, for each vertex in turn, an OutEdgeIterator over
// that vertex's out-edges — so edges(g) is exactly the concatenation of
// out_edges(v, g) over vertices(g), in order.
type EdgeIterator struct {
	g   *Graph
	vit *VertexIterator
	oit *OutEdgeIterator
	cur Edge
}

// NewEdgeIterator returns a fresh iterator positioned before the first
// edge of g.
func NewEdgeIterator(g *Graph) *EdgeIterator {
	return &EdgeIterator{g: g, vit: NewVertexIterator(g)}
}

// Next advances the iterator and reports whether an edge is now available
// via Edge.
func (it *EdgeIterator) Next() bool {
	for {
		if it.oit != nil && it.oit.Next() {
			it.cur = it.oit.Edge()

			return true
		}

		if !it.vit.Next() {
			return false
		}

		it.oit = NewOutEdgeIterator(it.g, it.vit.Vertex())
	}
}

// Edge returns the edge the most recent Next call produced.
func (it *EdgeIterator) Edge() Edge { return it.cur }
