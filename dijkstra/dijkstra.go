package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// ShortestPathTree computes shortest distances from root to every vertex of net.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilGraph).
//  2. root must be in 0..NodeCount()-1 (ErrVertexNotFound).
//  3. No arc may have a negative or NaN weight (ErrNegativeWeight).
//
// Notes on implementation choices:
//
//   - An upfront O(E) scan rejects bad weights before any state is built.
//   - Lazy decrease-key: improved distances push duplicates, stale entries are
//     skipped when popped.
//   - Exploration stops once the heap minimum exceeds MaxDistance.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPathTree(net Network, root int, opts ...Option) (*Tree, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and root
	if net == nil {
		return nil, ErrNilGraph
	}
	n := net.NodeCount()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: root=%d vertices=%d", ErrVertexNotFound, root, n)
	}

	// 3) Pre-scan every arc for invalid weights. Fail fast.
	var u, a int
	var w float64
	for u = 0; u < n; u++ {
		for _, a = range net.Outgoing(u) {
			w = net.Weight(a)
			if w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("%w: arc %d (%d→%d) weight=%g", ErrNegativeWeight, a, u, net.Head(a), w)
			}
		}
	}

	// 4) Allocate state and run.
	r := &runner{
		net:     net,
		options: cfg,
		tree: &Tree{
			Root:   root,
			Dist:   make([]float64, n),
			Parent: make([]int, n),
			Via:    make([]int, n),
		},
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return r.tree, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	net     Network
	options Options
	tree    *Tree
	visited []bool
	pq      nodePQ
}

// init sets every distance to +Inf, clears parents, and seeds the heap with the root.
func (r *runner) init() {
	for v := range r.tree.Dist {
		r.tree.Dist[v] = math.Inf(1)
		r.tree.Parent[v] = NoVertex
		r.tree.Via[v] = NoVertex
	}
	r.tree.Dist[r.tree.Root] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.tree.Root, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its arcs.
// It ends when the heap is empty or the minimum exceeds MaxDistance.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// Stale entry: already finalized through a shorter path.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve every head of an arc leaving u.
func (r *runner) relax(u int) {
	var v int
	var newDist float64
	for _, a := range r.net.Outgoing(u) {
		v = r.net.Head(a)
		if r.visited[v] {
			continue
		}
		newDist = r.tree.Dist[u] + r.net.Weight(a)
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" keeps the first arc found among equal-cost parallels.
		if newDist >= r.tree.Dist[v] {
			continue
		}
		r.tree.Dist[v] = newDist
		r.tree.Parent[v] = u
		r.tree.Via[v] = a
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by id so
// that equal-cost frontiers expand in a stable order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
