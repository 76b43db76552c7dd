package poi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeweave/multimodal/poi"
	"github.com/routeweave/multimodal/road"
)

func TestCollectionAddAndAt(t *testing.T) {
	c := poi.NewCollection()
	h := c.Add(poi.POI{DBID: 1, Kind: poi.TypeCarPark, Abscissa: 0.5})

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(1), c.At(h).DBID)
}

func TestCollectionValidate(t *testing.T) {
	rg := road.NewGraph()
	a := rg.AddNode(road.Node{DBID: 1})
	b := rg.AddNode(road.Node{DBID: 2})
	e, err := rg.AddSection(road.Section{From: a, To: b})
	require.NoError(t, err)

	c := poi.NewCollection()
	c.Add(poi.POI{Section: e, Abscissa: 0.2})
	assert.NoError(t, c.Validate(rg))

	c.Add(poi.POI{Section: road.EdgeID(99), Abscissa: 0.2})
	assert.ErrorIs(t, c.Validate(rg), poi.ErrImportInvariant)
}

func TestCollectionValidateBadAbscissa(t *testing.T) {
	rg := road.NewGraph()
	a := rg.AddNode(road.Node{})
	b := rg.AddNode(road.Node{})
	e, _ := rg.AddSection(road.Section{From: a, To: b})

	c := poi.NewCollection()
	c.Add(poi.POI{Section: e, Abscissa: 1.5})
	assert.ErrorIs(t, c.Validate(rg), poi.ErrImportInvariant)
}
