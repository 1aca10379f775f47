package roadnet

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evacsim/dijkstra"
)

// SetSink records the evacuation sink by external id and drops any computed
// tree. The name is validated by ComputeShortestPaths.
func (g *Graph) SetSink(name string) {
	g.sinkName = name
	g.sink = None
	g.dropTree()
}

// Sink returns the sink of the current tree.
func (g *Graph) Sink() (NodeID, bool) {
	if !g.treeValid {
		return None, false
	}

	return g.sink, true
}

// HasShortestPaths reports whether a sink tree is available.
func (g *Graph) HasShortestPaths() bool { return g.treeValid }

func (g *Graph) dropTree() {
	g.treeValid = false
	g.next, g.nextArc, g.dist = nil, nil, nil
}

// ComputeShortestPaths builds the tree rooted at the sink with arc length as weight.
//
// Every arc has an equal-length Reverse, so the tree grown outward from the
// sink gives each node v its next hop toward the sink as Parent[v], reached
// over Reverse(Via[v]).
//
// Errors: ErrConfiguration when the sink is unset or not a node of the graph.
// On error no tree is retained.
// Complexity: O((V + E) log V)
func (g *Graph) ComputeShortestPaths() error {
	g.dropTree()
	if g.sinkName == "" {
		return fmt.Errorf("%w: sink not set", ErrConfiguration)
	}
	sink, ok := g.index[g.sinkName]
	if !ok {
		return fmt.Errorf("%w: sink %q is not a node", ErrConfiguration, g.sinkName)
	}

	tree, err := dijkstra.ShortestPathTree(network{g: g}, int(sink))
	if err != nil {
		// Lengths are validated at build time; this is a broken arena.
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	n := len(g.names)
	g.next = make([]NodeID, n)
	g.nextArc = make([]ArcID, n)
	g.dist = tree.Dist
	for v := 0; v < n; v++ {
		if tree.Parent[v] == dijkstra.NoVertex {
			g.next[v], g.nextArc[v] = None, None
			continue
		}
		g.next[v] = NodeID(tree.Parent[v])
		g.nextArc[v] = g.arcs[tree.Via[v]].Reverse
	}
	g.sink = sink
	g.treeValid = true

	return nil
}

// Distance returns the shortest distance in km from n to the sink
// (+Inf when unreachable).
func (g *Graph) Distance(n NodeID) (float64, error) {
	if err := g.checkTree(n); err != nil {
		return 0, err
	}

	return g.dist[n], nil
}

// NextHop returns the next node and arc from n toward the sink.
// ok is false for the sink itself and for unreachable nodes.
func (g *Graph) NextHop(n NodeID) (next NodeID, arc ArcID, ok bool) {
	if !g.treeValid || !g.hasNode(n) || g.next[n] == None {
		return None, None, false
	}

	return g.next[n], g.nextArc[n], true
}

// PathTo returns the nodes from n to the sink, inclusive.
// PathTo(sink) is [sink].
func (g *Graph) PathTo(n NodeID) ([]NodeID, error) {
	r, err := g.Route(n)
	if err != nil {
		return nil, err
	}

	return r.Nodes, nil
}

// Route returns nodes, arcs and total length from n to the sink in one walk
// over the next pointers.
//
// Errors: ErrConfiguration (no tree), ErrUnknownNode, ErrUnreachableNode.
// Complexity: O(path length)
func (g *Graph) Route(n NodeID) (Route, error) {
	if err := g.checkTree(n); err != nil {
		return Route{}, err
	}
	if math.IsInf(g.dist[n], 1) {
		return Route{}, fmt.Errorf("%w: %q", ErrUnreachableNode, g.names[n])
	}

	r := Route{Nodes: []NodeID{n}}
	for u := n; u != g.sink; u = g.next[u] {
		a := g.nextArc[u]
		r.Arcs = append(r.Arcs, a)
		r.Nodes = append(r.Nodes, g.next[u])
		r.LengthKm += g.arcs[a].LengthKm
	}

	return r, nil
}

func (g *Graph) checkTree(n NodeID) error {
	if !g.treeValid {
		return fmt.Errorf("%w: shortest paths not computed", ErrConfiguration)
	}
	if !g.hasNode(n) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, n)
	}

	return nil
}
