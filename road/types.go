// Package road implements the undirected, labeled road graph: the base
// layer of the multimodal network. Nodes and sections are stored in dense
// slices so that Vertex and EdgeID values double as array indices, letting
// callers build O(1) index-addressed property maps directly on top of the
// graph without a separate ID-to-index translation layer.
//
// Concurrency: muNodes guards the node slice, muSections guards the section
// slice and adjacency lists. The graph is built once at import time and is
// read-only afterward; the locks exist so that read-only traversal from
// multiple goroutines is safe while nothing mutates concurrently.
package road

import (
	"errors"
	"sync"
)

// Sentinel errors for road graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("road: node not found")

	// ErrSectionNotFound indicates an operation referenced a non-existent section.
	ErrSectionNotFound = errors.New("road: section not found")

	// ErrImportInvariant indicates an imported graph violates an invariant
	// (e.g. a section endpoint that is not a node of the graph, or a
	// negative stop/POI back-reference index).
	ErrImportInvariant = errors.New("road: import invariant violated")
)

// Vertex is a dense index into the graph's node slice. It is valid only for
// the Graph that produced it.
type Vertex int

// EdgeID is a dense index into the graph's section slice.
type EdgeID int

// Node is a road junction (the 'road_node' table in the original schema).
type Node struct {
	// DBID is the opaque identity assigned at import time.
	DBID int64

	// IsJunction marks a node where more than two sections meet.
	IsJunction bool
	// IsBifurcation marks a node where a one-way split occurs.
	IsBifurcation bool
}

// TransportTypeMask is a bitfield of allowed transport-type ids, stored
// separately for the forward and reverse direction of a Section.
type TransportTypeMask uint32

// RoadClass is the functional class of a road section (motorway, street…).
// The concrete enumeration is left to the importer; the graph only stores
// and returns the value.
type RoadClass int

// StopRef is a non-owning back-reference from a Section to a PT stop
// anchored on it. NetworkID identifies which PublicTransportGraph in the
// collection owns the stop; StopIndex is that sub-graph's dense vertex
// index for the stop. Section never owns the stop — the PT sub-graph does.
type StopRef struct {
	NetworkID string
	StopIndex int
}

// POIRef is a non-owning back-reference from a Section to a POI anchored
// on it, identified by its position in the owning poi.Collection.
type POIRef struct {
	Index int
}

// Section is an undirected road edge (the 'road_section' table).
type Section struct {
	// DBID is the opaque identity assigned at import time.
	DBID int64

	From, To Vertex

	RoadClass RoadClass

	// TransportTypeForward/TransportTypeReverse are bitfields of allowed
	// transport-type ids, one per direction of travel along From->To.
	TransportTypeForward TransportTypeMask
	TransportTypeReverse TransportTypeMask

	LengthMeters float64

	CarSpeedLimit   float64
	CarAverageSpeed float64
	BusAverageSpeed float64

	RoadName         string
	AddressLeftSide  string
	AddressRightSide string

	Lanes int

	IsRoundabout bool
	IsBridge     bool
	IsTunnel     bool
	IsRamp       bool
	IsTollway    bool

	// Stops lists the PT stops anchored to this section, in import order.
	Stops []StopRef
	// POIs lists the POIs anchored to this section, in import order.
	POIs []POIRef
}

// Graph is the road layer: an undirected graph of Node/Section with dense
// integer descriptors. It is built once by an importer and treated as
// read-only thereafter.
type Graph struct {
	muNodes    sync.RWMutex
	muSections sync.RWMutex

	nodes    []Node
	sections []Section

	// adjacency[v] lists, in section-insertion order, the EdgeIDs incident
	// to node v (in either direction, since the graph is undirected).
	adjacency [][]EdgeID
}

// NewGraph returns an empty road Graph.
func NewGraph() *Graph {
	return &Graph{}
}
