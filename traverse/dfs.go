package traverse

import (
	"context"
	"fmt"

	"github.com/routeweave/multimodal/multimodal"
)

// DFS performs a depth-first walk of g starting at source, calling visit
// in pre-order on every reachable vertex exactly once. visited state is
// tracked in a []bool keyed by VertexIndex, not a map. ctx is checked
// between vertex expansions; a cancelled context aborts the walk and
// returns ctx.Err(). An error returned by visit aborts the walk and is
// returned wrapped with the offending vertex's String() rendering.
//
// Complexity: O(V + E) time, O(V) space (the explicit stack plus the
// visited slice). The walk is iterative rather than recursive, since
// composite-graph depth is unbounded by construction and an explicit
// stack avoids a Go stack overflow on a deep road network.
func DFS(ctx context.Context, g IndexedGraph, source multimodal.Vertex, visit func(multimodal.Vertex) error) error {
	if g == nil {
		return ErrNilGraph
	}

	visited := make([]bool, g.VertexIndexSpace())

	type frame struct {
		out *multimodal.OutEdgeIterator
	}

	stack := []frame{{out: g.OutEdges(source)}}
	visited[g.VertexIndex(source)] = true

	if err := visit(source); err != nil {
		return fmt.Errorf("traverse: visit(%s): %w", source, err)
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		top := &stack[len(stack)-1]

		if !top.out.Next() {
			stack = stack[:len(stack)-1]

			continue
		}

		target := top.out.Edge().Target
		idx := g.VertexIndex(target)
		if visited[idx] {
			continue
		}

		visited[idx] = true
		if err := visit(target); err != nil {
			return fmt.Errorf("traverse: visit(%s): %w", target, err)
		}

		stack = append(stack, frame{out: g.OutEdges(target)})
	}

	return nil
}
