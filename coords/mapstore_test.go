package coords_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routeweave/multimodal/coords"
)

func TestMapStoreRoundTrip(t *testing.T) {
	s := coords.NewMapStore()
	s.SetRoadNode(1, coords.Point2D{X: 1.5, Y: 2.5})
	s.SetPTStop(2, coords.Point2D{X: 3, Y: 4})
	s.SetPOI(3, coords.Point2D{X: 5, Y: 6})

	p, err := s.RoadNodeCoordinates(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, coords.Point2D{X: 1.5, Y: 2.5}, p)

	p, err = s.PTStopCoordinates(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, coords.Point2D{X: 3, Y: 4}, p)

	p, err = s.POICoordinates(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, coords.Point2D{X: 5, Y: 6}, p)
}

func TestMapStoreMiss(t *testing.T) {
	s := coords.NewMapStore()

	_, err := s.RoadNodeCoordinates(context.Background(), 99)
	assert.ErrorIs(t, err, coords.ErrDataMissing)
}
