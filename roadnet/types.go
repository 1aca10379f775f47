package roadnet

import (
	"errors"
	"strings"
)

// Sentinel errors for road-network operations.
var (
	// ErrInvalidEdge indicates a record with a non-positive (or non-finite)
	// length or an empty endpoint.
	ErrInvalidEdge = errors.New("roadnet: invalid edge")

	// ErrConfiguration indicates the sink is unset or unknown, or the
	// shortest-path tree was queried before it was computed.
	ErrConfiguration = errors.New("roadnet: configuration error")

	// ErrUnreachableNode indicates a node with no path to the sink.
	ErrUnreachableNode = errors.New("roadnet: node unreachable from sink")

	// ErrUnknownNode indicates a NodeID outside the graph.
	ErrUnknownNode = errors.New("roadnet: unknown node")

	// ErrUnknownArc indicates an ArcID outside the graph.
	ErrUnknownArc = errors.New("roadnet: unknown arc")

	// ErrNegativeOccupancy indicates a decrement on an arc with no cars.
	ErrNegativeOccupancy = errors.New("roadnet: occupancy would become negative")
)

// NodeID is a dense handle for a node, valid in 0..NodeCount()-1.
type NodeID int

// ArcID is a dense handle for a directed arc, valid in 0..ArcCount()-1.
type ArcID int

// None marks a missing node or arc handle.
const None = -1

// RoadClass is the speed class derived from a record's form of way.
type RoadClass int

const (
	// ClassOther covers every form of way without its own limit.
	ClassOther RoadClass = iota
	// ClassSingleCarriageway is an undivided road.
	ClassSingleCarriageway
	// ClassDualCarriageway is a divided road.
	ClassDualCarriageway
)

func (c RoadClass) String() string {
	switch c {
	case ClassSingleCarriageway:
		return "Single Carriageway"
	case ClassDualCarriageway:
		return "Dual Carriageway"
	default:
		return "Other"
	}
}

// ClassifyFormOfWay maps an OS Open Roads form-of-way string onto a RoadClass.
// Matching ignores case and surrounding whitespace; unknown values are ClassOther.
func ClassifyFormOfWay(formOfWay string) RoadClass {
	switch strings.ToLower(strings.TrimSpace(formOfWay)) {
	case "single carriageway":
		return ClassSingleCarriageway
	case "dual carriageway":
		return ClassDualCarriageway
	default:
		return ClassOther
	}
}

// SpeedTable holds the free-flow speed in km/h for each RoadClass.
type SpeedTable [3]float64

// DefaultSpeedTable returns the fixed UK lookup: 60 mph single carriageway,
// 70 mph dual carriageway, 20 mph everywhere else.
func DefaultSpeedTable() SpeedTable {
	var t SpeedTable
	t[ClassSingleCarriageway] = 96
	t[ClassDualCarriageway] = 112
	t[ClassOther] = 32

	return t
}

// Kmh returns the free-flow speed for class c.
func (t SpeedTable) Kmh(c RoadClass) float64 {
	if c < 0 || int(c) >= len(t) {
		return t[ClassOther]
	}

	return t[c]
}

// EdgeRecord is one undirected road link as supplied by a geographic loader.
type EdgeRecord struct {
	StartNode    string
	EndNode      string
	LengthMeters float64
	FormOfWay    string
}

// Arc is one directed traversable direction of a road link.
type Arc struct {
	ID       ArcID
	From     NodeID
	To       NodeID
	LengthKm float64
	// FreeFlow is the uncongested maximum speed in km per tick.
	FreeFlow float64
	// Reverse is the arc for the opposite direction of the same road.
	Reverse ArcID
	Class   RoadClass
}

// Route is a precomputed path from a start node to the sink.
//
// Nodes[0] is the start, Nodes[len-1] the sink; Arcs[i] joins Nodes[i]→Nodes[i+1].
type Route struct {
	Nodes    []NodeID
	Arcs     []ArcID
	LengthKm float64
}
