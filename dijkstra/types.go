package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPathTree.
var (
	// ErrNilGraph indicates that a nil Network was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the root vertex is not part of the Network.
	ErrVertexNotFound = errors.New("dijkstra: root vertex not found in graph")

	// ErrNegativeWeight indicates that a negative (or NaN) arc weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative arc weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// NoVertex marks a missing parent or via-arc entry in a Tree.
const NoVertex = -1

// Network is the read-only view ShortestPathTree needs from a graph.
// Vertices are the dense range 0..NodeCount()-1; arcs are opaque int handles.
type Network interface {
	// NodeCount returns the number of vertices.
	NodeCount() int
	// Outgoing returns the arc handles leaving vertex u.
	Outgoing(u int) []int
	// Head returns the vertex an arc points to.
	Head(arc int) int
	// Weight returns the non-negative cost of an arc.
	Weight(arc int) float64
}

// Tree is a shortest-path tree rooted at Root.
//
// Dist[v]   – distance from Root to v, math.Inf(1) when v is unreachable.
// Parent[v] – predecessor of v on one shortest path, NoVertex for Root and unreachable v.
// Via[v]    – arc handle Parent[v]→v, NoVertex for Root and unreachable v.
type Tree struct {
	Root   int
	Dist   []float64
	Parent []int
	Via    []int
}

// Reachable reports whether v has a finite distance from Root.
func (t *Tree) Reachable(v int) bool {
	if v < 0 || v >= len(t.Dist) {
		return false
	}

	return !math.IsInf(t.Dist[v], 1)
}

// Options configures ShortestPathTree.
//
// MaxDistance – vertices whose distance would exceed this value are left unreachable.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring ShortestPathTree.
type Option func(*Options)

// WithMaxDistance caps exploration at max. Vertices beyond the cap keep an
// infinite distance. Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Validation panics are confined to option constructors.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
