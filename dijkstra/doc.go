// Package dijkstra computes single-root shortest-path trees over a dense,
// integer-indexed arc arena with non-negative float64 weights.
//
// Overview:
//
//   - ShortestPathTree grows a tree from one root vertex to every reachable
//     vertex in O((V + E) log V) time, where V = |vertices| and E = |arcs|.
//   - It relies on a binary min-heap to always expand the next-closest vertex.
//   - The result records, per vertex, the distance from the root, the parent
//     vertex and the arc used to reach it, so any path can be rebuilt in
//     O(path length) without a second search.
//
// When to use:
//
//   - Routing toward (or away from) a single point on a static network, such
//     as an evacuation sink on a road graph whose arcs come in equal-length
//     pairs. On such a graph the tree grown from the sink also gives, for each
//     vertex, the next hop toward the sink: it is simply the Parent pointer.
//
// Input model:
//
//	type Network interface {
//	    NodeCount() int            // vertices are 0..NodeCount()-1
//	    Outgoing(u int) []int      // arc handles leaving u
//	    Head(arc int) int          // vertex an arc points to
//	    Weight(arc int) float64    // non-negative arc cost
//	}
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each successful relaxation pushes one heap entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for Dist, Parent, Via and the visited flags.
//   - O(E) worst-case heap entries under the lazy decrease-key strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        the Network is nil.
//   - ErrVertexNotFound:  the root is outside 0..NodeCount()-1.
//   - ErrNegativeWeight:  any arc carries a negative or NaN weight (O(E) pre-scan).
//   - ErrBadMaxDistance:  passed (via panic) to WithMaxDistance with a negative cap.
//
// Thread safety:
//
//   - ShortestPathTree only reads the Network. If the Network is mutated
//     concurrently, synchronize externally.
package dijkstra
