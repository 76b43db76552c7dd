package traverse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeweave/multimodal/multimodal"
	"github.com/routeweave/multimodal/poi"
	"github.com/routeweave/multimodal/road"
	"github.com/routeweave/multimodal/traverse"
	"github.com/routeweave/multimodal/transit"
)

// buildLinear builds A-B-C-D as a road-only path, one 100 m section
// between each pair.
func buildLinear(t *testing.T) *multimodal.Graph {
	t.Helper()

	rg := road.NewGraph()
	n := make([]road.Vertex, 4)
	for i := range n {
		n[i] = rg.AddNode(road.Node{DBID: int64(i + 1)})
	}

	for i := 0; i < 3; i++ {
		_, err := rg.AddSection(road.Section{DBID: int64(i + 10), From: n[i], To: n[i+1], LengthMeters: 100})
		require.NoError(t, err)
	}

	return multimodal.NewGraph(rg, transit.NewCollection(), poi.NewCollection())
}

func TestDFSVisitsEveryReachableVertexOnce(t *testing.T) {
	g := buildLinear(t)

	var order []multimodal.Vertex
	err := traverse.DFS(context.Background(), g, multimodal.NewRoadVertex(0), func(v multimodal.Vertex) error {
		order = append(order, v)

		return nil
	})

	require.NoError(t, err)
	assert.Len(t, order, 4)
	assert.Equal(t, multimodal.NewRoadVertex(0), order[0])
}

func TestDFSRespectsCancelledContext(t *testing.T) {
	g := buildLinear(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := traverse.DFS(ctx, g, multimodal.NewRoadVertex(0), func(multimodal.Vertex) error {
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

// buildS3 builds the S1 road path A-B-C plus a PT sub-graph with two
// stops s1 (on section A-B), s2 (on section B-C), and one PT section
// s1->s2 — the fixture that exercises Transport2Road and
// Transport2Transport edges through the generic traversal adapters.
func buildS3(t *testing.T) *multimodal.Graph {
	t.Helper()

	rg := road.NewGraph()
	a := rg.AddNode(road.Node{DBID: 1})
	b := rg.AddNode(road.Node{DBID: 2})
	c := rg.AddNode(road.Node{DBID: 3})

	_, err := rg.AddSection(road.Section{DBID: 10, From: a, To: b})
	require.NoError(t, err)
	_, err = rg.AddSection(road.Section{DBID: 11, From: b, To: c})
	require.NoError(t, err)

	tg := transit.NewGraph()
	s1 := tg.AddStop(transit.Stop{DBID: 900, RoadSection: 0})
	s2 := tg.AddStop(transit.Stop{DBID: 901, RoadSection: 1})
	_, err = tg.AddSection(transit.Section{DBID: 9000, From: s1, To: s2, Mode: "bus"})
	require.NoError(t, err)

	rg.SetSectionStops(0, []road.StopRef{{NetworkID: "line1", StopIndex: int(s1)}})
	rg.SetSectionStops(1, []road.StopRef{{NetworkID: "line1", StopIndex: int(s2)}})

	tc := transit.NewCollection()
	tc.Add("line1", tg)
	tc.SelectAll()

	return multimodal.NewGraph(rg, tc, poi.NewCollection())
}

// S5: DFS from a road vertex of the S3 graph must visit all 5 vertices,
// including both PT stops reached only through Transport2Road and
// Transport2Transport edges.
func TestDFSVisitsS3CompositeGraph(t *testing.T) {
	g := buildS3(t)

	var order []multimodal.Vertex
	err := traverse.DFS(context.Background(), g, multimodal.NewRoadVertex(0), func(v multimodal.Vertex) error {
		order = append(order, v)

		return nil
	})

	require.NoError(t, err)
	assert.Len(t, order, 5)

	seen := make(map[multimodal.Vertex]bool, len(order))
	for _, v := range order {
		seen[v] = true
	}
	assert.True(t, seen[multimodal.NewPTVertex(0, "line1", 0)], "s1 must be reached")
	assert.True(t, seen[multimodal.NewPTVertex(0, "line1", 1)], "s2 must be reached")
}

// S6: Dijkstra on the S3 graph with unit weights from A to s2 must find a
// finite distance via a predecessor chain no longer than 3 edges.
func TestDijkstraOverS3CompositeGraph(t *testing.T) {
	g := buildS3(t)

	weight := func(multimodal.Edge) (int64, bool) { return 1, true }

	res, err := traverse.Dijkstra(context.Background(), g, multimodal.NewRoadVertex(0), weight, true)
	require.NoError(t, err)

	s2 := multimodal.NewPTVertex(0, "line1", 1)
	idx := g.VertexIndex(s2)

	require.Less(t, res.Dist[idx], int64(1<<62), "s2 must be reachable")

	hops := 0
	for i := idx; res.Prev[i] != -1; i = int(res.Prev[i]) {
		hops++
		require.LessOrEqual(t, hops, 3, "predecessor chain must not exceed 3 edges")
	}
	assert.LessOrEqual(t, hops, 3)
}

func TestDijkstraShortestDistances(t *testing.T) {
	g := buildLinear(t)

	weight := func(e multimodal.Edge) (int64, bool) {
		if e.ConnectionType() != multimodal.Road2Road {
			return 0, false
		}

		return 1, true
	}

	res, err := traverse.Dijkstra(context.Background(), g, multimodal.NewRoadVertex(0), weight, true)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Dist[g.VertexIndex(multimodal.NewRoadVertex(0))])
	assert.Equal(t, int64(1), res.Dist[g.VertexIndex(multimodal.NewRoadVertex(1))])
	assert.Equal(t, int64(2), res.Dist[g.VertexIndex(multimodal.NewRoadVertex(2))])
	assert.Equal(t, int64(3), res.Dist[g.VertexIndex(multimodal.NewRoadVertex(3))])
}
