package traverse

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/routeweave/multimodal/multimodal"
)

// Dijkstra computes shortest distances from source to every vertex of g
// reachable through edges weight accepts, keyed by VertexIndex rather
// than by vertex value. ctx is checked between vertex expansions; a
// cancelled context aborts the run and returns ctx.Err().
//
// Preconditions: g must be non-nil (ErrNilGraph). weight must never
// return a negative weight for a passable edge (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space, using a
// lazy-decrease-key binary heap: a shorter distance to an already-queued
// vertex is pushed as a new heap entry rather than updating the old one
// in place, and stale entries are discarded when popped.
func Dijkstra(ctx context.Context, g IndexedGraph, source multimodal.Vertex, weight WeightFunc, returnPath bool) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexIndexSpace()
	dist := make([]int64, n)
	visited := make([]bool, n)
	indexToVertex := make([]multimodal.Vertex, n)

	var prev []int64
	if returnPath {
		prev = make([]int64, n)
	}

	for i := 0; i < n; i++ {
		dist[i] = unreachable
		if prev != nil {
			prev[i] = noPredecessor
		}
	}

	for it := g.Vertices(); it.Next(); {
		v := it.Vertex()
		indexToVertex[g.VertexIndex(v)] = v
	}

	srcIdx := g.VertexIndex(source)
	dist[srcIdx] = 0

	pq := make(vertexPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &pqItem{index: srcIdx, dist: 0})

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := heap.Pop(&pq).(*pqItem)
		u := item.index

		if visited[u] {
			continue
		}
		visited[u] = true

		for oit := g.OutEdges(indexToVertex[u]); oit.Next(); {
			e := oit.Edge()

			w, ok := weight(e)
			if !ok {
				continue
			}
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %s weight=%d", ErrNegativeWeight, e, w)
			}

			v := g.VertexIndex(e.Target)
			newDist := dist[u] + w
			if newDist >= dist[v] {
				continue
			}

			dist[v] = newDist
			if prev != nil {
				prev[v] = int64(u)
			}

			heap.Push(&pq, &pqItem{index: v, dist: newDist})
		}
	}

	return &Result{Dist: dist, Prev: prev, indexToVertex: indexToVertex}, nil
}

// pqItem pairs a VertexIndex with its current tentative distance, for
// ordering in the heap.
type pqItem struct {
	index int
	dist  int64
}

// vertexPQ is a min-heap of *pqItem ordered by dist ascending.
type vertexPQ []*pqItem

func (pq vertexPQ) Len() int            { return len(pq) }
func (pq vertexPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq vertexPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
