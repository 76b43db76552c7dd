package road_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeweave/multimodal/road"
)

func buildTriangle(t *testing.T) (*road.Graph, road.Vertex, road.Vertex, road.Vertex) {
	t.Helper()

	g := road.NewGraph()
	a := g.AddNode(road.Node{DBID: 1})
	b := g.AddNode(road.Node{DBID: 2})
	c := g.AddNode(road.Node{DBID: 3})

	_, err := g.AddSection(road.Section{DBID: 10, From: a, To: b, LengthMeters: 5})
	require.NoError(t, err)
	_, err = g.AddSection(road.Section{DBID: 11, From: b, To: c, LengthMeters: 7})
	require.NoError(t, err)

	return g, a, b, c
}

func TestAddNodeAndSection(t *testing.T) {
	g, a, b, c := buildTriangle(t)

	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 2, g.NumSections())

	assert.Len(t, g.IncidentEdges(a), 1)
	assert.Len(t, g.IncidentEdges(b), 2)
	assert.Len(t, g.IncidentEdges(c), 1)
}

func TestAddSectionUnknownNode(t *testing.T) {
	g := road.NewGraph()
	a := g.AddNode(road.Node{DBID: 1})

	_, err := g.AddSection(road.Section{From: a, To: road.Vertex(99)})
	assert.ErrorIs(t, err, road.ErrNodeNotFound)
}

func TestSectionOther(t *testing.T) {
	g, a, b, _ := buildTriangle(t)
	sec := g.Section(g.IncidentEdges(a)[0])

	assert.Equal(t, b, sec.Other(a))
	assert.Equal(t, a, sec.Other(b))
}

func TestValidate(t *testing.T) {
	g, _, _, _ := buildTriangle(t)
	assert.NoError(t, g.Validate())
}
