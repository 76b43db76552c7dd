package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeweave/multimodal/builder"
	"github.com/routeweave/multimodal/road"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 3, g.NumSections())
	assert.Len(t, g.IncidentEdges(0), 1)
	assert.Len(t, g.IncidentEdges(1), 2)
}

func TestPathTooFew(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumNodes())
	assert.Equal(t, 5, g.NumSections())
	for v := 0; v < 5; v++ {
		assert.Len(t, g.IncidentEdges(road.Vertex(v)), 2)
	}
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(2, 3))
	require.NoError(t, err)

	assert.Equal(t, 6, g.NumNodes())
	// interior connectivity: 2x3 grid has 7 edges (2 horizontal pairs per
	// row * 2 rows = 4, plus 3 vertical) computed directly: horiz = rows*(cols-1) = 2*2=4,
	// vert = (rows-1)*cols = 1*3=3, total 7.
	assert.Equal(t, 7, g.NumSections())

	corners := map[road.Vertex]bool{0: true, 2: true, 3: true, 5: true}
	for v := road.Vertex(0); v < 6; v++ {
		assert.Equal(t, corners[v], g.Node(v).IsBifurcation, "node %d bifurcation flag", v)
	}
}

func TestGridSectionDefaults(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithSectionLength(25),
			builder.WithRoadClass(road.RoadClass(3)),
		},
		builder.Grid(2, 2),
	)
	require.NoError(t, err)

	for _, e := range g.IncidentEdges(0) {
		sec := g.Section(e)
		assert.Equal(t, 25.0, sec.LengthMeters)
		assert.Equal(t, road.RoadClass(3), sec.RoadClass)
	}
}

func TestWithSeedIsDeterministic(t *testing.T) {
	build := func() *road.Graph {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(42)},
			builder.Path(5),
		)
		require.NoError(t, err)
		return g
	}

	g1, g2 := build(), build()
	for e := 0; e < g1.NumSections(); e++ {
		assert.Equal(t, g1.Section(road.EdgeID(e)).LengthMeters, g2.Section(road.EdgeID(e)).LengthMeters)
	}
}

func TestDBIDOffsetAvoidsCollisions(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{},
		builder.Path(2),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(0), g.Node(0).DBID)

	g2, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithDBIDOffset(1000)},
		builder.Path(2),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), g2.Node(0).DBID)
}
