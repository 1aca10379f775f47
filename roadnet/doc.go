// Package roadnet is the road-network layer of evacsim: a dense arena of
// directed arcs built from undirected road records, a shortest-path tree
// rooted at a single evacuation sink, and per-arc car occupancy counters.
//
// Model:
//
//   - Node: an intersection or road end, identified externally by a string
//     (e.g. an OS Open Roads node GUID) and internally by a dense NodeID.
//   - Arc: one direction of travel on a road link. Every record yields two
//     arcs that are each other's Reverse, with equal length and free-flow
//     speed but independent occupancy.
//   - Free-flow speed: looked up from the record's form of way and converted
//     from km/h to km per tick using the graph's tick duration:
//
//     Single Carriageway → 96 km/h
//     Dual Carriageway   → 112 km/h
//     anything else      → 32 km/h (20 mph default limit)
//
//   - Sink tree: after SetSink + ComputeShortestPaths every node knows its
//     next node and next arc toward the sink. PathTo walks these pointers, so
//     the result is already ordered start→sink.
//
// Typical use:
//
//	g := roadnet.NewGraph(roadnet.WithTickDuration(75 * time.Second))
//	if err := g.BuildFromEdges(records); err != nil {
//	    return err
//	}
//	g.SetSink("B")
//	if err := g.ComputeShortestPaths(); err != nil {
//	    return err
//	}
//	a, _ := g.Node("A")
//	path, err := g.PathTo(a)
//
// Errors (sentinel, match with errors.Is):
//
//	ErrInvalidEdge       - record with non-positive length or empty endpoint.
//	ErrConfiguration     - sink unset/unknown, or tree used before it is computed.
//	ErrUnreachableNode   - node has no path to the sink.
//	ErrUnknownNode       - NodeID outside the graph.
//	ErrUnknownArc        - ArcID outside the graph.
//	ErrNegativeOccupancy - occupancy decrement on an empty arc.
//
// Complexity:
//
//   - BuildFromEdges: O(R) for R records.
//   - ComputeShortestPaths: O((V + E) log V).
//   - PathTo / Route: O(path length).
//   - Occupancy ops: O(1).
//
// Concurrency:
//
//   - Graph holds no locks. Building and the sink tree are one-time setup;
//     occupancy is mutated by exactly one simulator. Give each concurrently
//     running simulator its own Clone.
package roadnet
