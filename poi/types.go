// Package poi models points of interest anchored to road sections: car
// parks, shared car/cycle points, cycle parks, and user-defined POIs.
package poi

import (
	"errors"
	"sync"

	"github.com/routeweave/multimodal/road"
)

// ErrImportInvariant indicates a POI references a road section that does
// not exist in the road graph it was imported against.
var ErrImportInvariant = errors.New("poi: import invariant violated")

// Type enumerates the kinds of POI the network can carry.
type Type int

const (
	TypeCarPark Type = iota + 1
	TypeSharedCarPoint
	TypeCyclePark
	TypeSharedCyclePoint
	TypeUserPOI
)

// TransportTypeMask is a bitfield of transport-type ids a parking POI
// accepts.
type TransportTypeMask uint32

// POI is a point of interest anchored at an abscissa along a road section.
type POI struct {
	DBID int64
	Name string

	Kind                  Type
	ParkingTransportTypes TransportTypeMask

	Section  road.EdgeID
	Abscissa float64 // in [0, 1]
}

// Handle is a dense index into a Collection, used as the poi-handle
// variant payload of a composite multimodal vertex.
type Handle int

// Collection is an ordered, append-only set of POIs. Iteration order is
// insertion order.
type Collection struct {
	mu   sync.RWMutex
	pois []POI
}

// NewCollection returns an empty POI collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends p and returns its Handle.
func (c *Collection) Add(p POI) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pois = append(c.pois, p)

	return Handle(len(c.pois) - 1)
}

// Len returns the number of POIs in the collection. Complexity: O(1).
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.pois)
}

// At returns the POI at handle h.
func (c *Collection) At(h Handle) POI {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pois[h]
}

// Validate checks that every POI's Section exists in rg and that the
// abscissa lies in [0, 1].
func (c *Collection) Validate(rg *road.Graph) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := rg.NumSections()
	for _, p := range c.pois {
		if int(p.Section) < 0 || int(p.Section) >= n {
			return ErrImportInvariant
		}
		if p.Abscissa < 0 || p.Abscissa > 1 {
			return ErrImportInvariant
		}
	}

	return nil
}
