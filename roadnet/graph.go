package roadnet

import (
	"fmt"
	"math"
	"time"
)

// defaultTickDuration is used when no WithTickDuration option is given.
const defaultTickDuration = time.Second

// metersPerKm converts record lengths to the km used everywhere else.
const metersPerKm = 1000.0

// GraphOption configures a Graph before any edge is added.
type GraphOption func(g *Graph)

// WithTickDuration sets the simulated length of one tick. Free-flow speeds
// are stored in km per tick, so this must match the simulator's tick.
// Panics if d <= 0.
func WithTickDuration(d time.Duration) GraphOption {
	if d <= 0 {
		panic("roadnet: WithTickDuration requires a positive duration")
	}

	return func(g *Graph) { g.tick = d }
}

// WithSpeedTable replaces the default free-flow speed lookup.
// Panics if any entry is not a positive finite speed.
func WithSpeedTable(t SpeedTable) GraphOption {
	for _, kmh := range t {
		if !(kmh > 0) || math.IsInf(kmh, 1) {
			panic("roadnet: WithSpeedTable requires positive finite speeds")
		}
	}

	return func(g *Graph) { g.speeds = t }
}

// Graph is a road network stored as a dense arc arena.
//
// names/index intern external node ids; arcs is the arena; out[u] lists the
// arcs leaving u; occupancy[a] counts cars currently on arc a. The sink tree
// (next, nextArc, dist) is valid only while treeValid is true.
type Graph struct {
	tick   time.Duration
	speeds SpeedTable

	names []string
	index map[string]NodeID

	arcs      []Arc
	out       [][]int
	occupancy []int

	sinkName  string
	sink      NodeID
	treeValid bool
	next      []NodeID
	nextArc   []ArcID
	dist      []float64
}

// NewGraph creates an empty Graph. Defaults: one-second ticks and DefaultSpeedTable.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		tick:   defaultTickDuration,
		speeds: DefaultSpeedTable(),
		index:  make(map[string]NodeID),
		sink:   None,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// TickDuration returns the tick the free-flow speeds were converted with.
func (g *Graph) TickDuration() time.Duration { return g.tick }

// KmhToPerTick converts a km/h speed to km per tick for this graph.
func (g *Graph) KmhToPerTick(kmh float64) float64 {
	return kmh * g.tick.Seconds() / 3600
}

// BuildFromEdges adds every record as a pair of directed arcs.
//
// Steps:
//  1. Validate every record first, so a bad record leaves the graph untouched.
//  2. Intern endpoints and append both arcs per record.
//  3. Invalidate any previously computed sink tree.
//
// Complexity: O(R) for R records.
func (g *Graph) BuildFromEdges(records []EdgeRecord) error {
	for i := range records {
		if err := validateRecord(records[i]); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	for i := range records {
		g.addEdge(records[i])
	}

	return nil
}

// AddEdge adds one record and returns the arc StartNode→EndNode. Its reverse
// is the returned arc's Reverse.
func (g *Graph) AddEdge(rec EdgeRecord) (ArcID, error) {
	if err := validateRecord(rec); err != nil {
		return None, err
	}

	return g.addEdge(rec), nil
}

func validateRecord(rec EdgeRecord) error {
	if rec.StartNode == "" || rec.EndNode == "" {
		return fmt.Errorf("%w: empty endpoint (%q→%q)", ErrInvalidEdge, rec.StartNode, rec.EndNode)
	}
	if !(rec.LengthMeters > 0) || math.IsInf(rec.LengthMeters, 1) {
		return fmt.Errorf("%w: %s→%s length=%gm", ErrInvalidEdge, rec.StartNode, rec.EndNode, rec.LengthMeters)
	}

	return nil
}

// addEdge appends the forward and reverse arcs. rec must be valid.
func (g *Graph) addEdge(rec EdgeRecord) ArcID {
	u := g.intern(rec.StartNode)
	v := g.intern(rec.EndNode)
	class := ClassifyFormOfWay(rec.FormOfWay)
	lengthKm := rec.LengthMeters / metersPerKm
	speed := g.KmhToPerTick(g.speeds.Kmh(class))

	fwd := ArcID(len(g.arcs))
	rev := fwd + 1
	g.arcs = append(g.arcs,
		Arc{ID: fwd, From: u, To: v, LengthKm: lengthKm, FreeFlow: speed, Reverse: rev, Class: class},
		Arc{ID: rev, From: v, To: u, LengthKm: lengthKm, FreeFlow: speed, Reverse: fwd, Class: class},
	)
	g.occupancy = append(g.occupancy, 0, 0)
	g.out[u] = append(g.out[u], int(fwd))
	g.out[v] = append(g.out[v], int(rev))
	g.treeValid = false

	return fwd
}

// intern returns the handle for name, allocating one on first sight.
func (g *Graph) intern(name string) NodeID {
	if id, ok := g.index[name]; ok {
		return id
	}
	id := NodeID(len(g.names))
	g.names = append(g.names, name)
	g.index[name] = id
	g.out = append(g.out, nil)

	return id
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.names) }

// ArcCount returns the number of directed arcs (twice the record count).
func (g *Graph) ArcCount() int { return len(g.arcs) }

// Node resolves an external node id.
func (g *Graph) Node(name string) (NodeID, bool) {
	id, ok := g.index[name]
	return id, ok
}

// NodeName returns the external id of n, or "" if n is out of range.
func (g *Graph) NodeName(n NodeID) string {
	if !g.hasNode(n) {
		return ""
	}

	return g.names[n]
}

func (g *Graph) hasNode(n NodeID) bool { return n >= 0 && int(n) < len(g.names) }

func (g *Graph) hasArc(a ArcID) bool { return a >= 0 && int(a) < len(g.arcs) }

// Arc returns a copy of the arc record.
func (g *Graph) Arc(a ArcID) (Arc, error) {
	if !g.hasArc(a) {
		return Arc{}, fmt.Errorf("%w: %d", ErrUnknownArc, a)
	}

	return g.arcs[a], nil
}

// Outgoing returns the arcs leaving n in insertion order.
func (g *Graph) Outgoing(n NodeID) []ArcID {
	if !g.hasNode(n) {
		return nil
	}
	res := make([]ArcID, len(g.out[n]))
	for i, a := range g.out[n] {
		res[i] = ArcID(a)
	}

	return res
}

// ArcBetween returns the shortest arc u→v, if any.
func (g *Graph) ArcBetween(u, v NodeID) (ArcID, bool) {
	if !g.hasNode(u) || !g.hasNode(v) {
		return None, false
	}
	best := ArcID(None)
	for _, a := range g.out[u] {
		if g.arcs[a].To != v {
			continue
		}
		if best == None || g.arcs[a].LengthKm < g.arcs[best].LengthKm {
			best = ArcID(a)
		}
	}

	return best, best != None
}

// IdealTicks sums length/free-flow over arcs: the uncongested travel time in ticks.
func (g *Graph) IdealTicks(arcs []ArcID) float64 {
	var total float64
	for _, a := range arcs {
		if g.hasArc(a) {
			total += g.arcs[a].LengthKm / g.arcs[a].FreeFlow
		}
	}

	return total
}

// Clone returns a deep copy with the same arcs and sink tree and zero occupancy.
// Use it to run independent simulators over one parsed network.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		tick:      g.tick,
		speeds:    g.speeds,
		names:     append([]string(nil), g.names...),
		index:     make(map[string]NodeID, len(g.index)),
		arcs:      append([]Arc(nil), g.arcs...),
		out:       make([][]int, len(g.out)),
		occupancy: make([]int, len(g.occupancy)),
		sinkName:  g.sinkName,
		sink:      g.sink,
		treeValid: g.treeValid,
		next:      append([]NodeID(nil), g.next...),
		nextArc:   append([]ArcID(nil), g.nextArc...),
		dist:      append([]float64(nil), g.dist...),
	}
	for name, id := range g.index {
		clone.index[name] = id
	}
	for u := range g.out {
		clone.out[u] = append([]int(nil), g.out[u]...)
	}

	return clone
}

// network adapts Graph to dijkstra.Network.
type network struct{ g *Graph }

func (n network) NodeCount() int { return len(n.g.names) }
func (n network) Outgoing(u int) []int { return n.g.out[u] }
func (n network) Head(a int) int { return int(n.g.arcs[a].To) }
func (n network) Weight(a int) float64 { return n.g.arcs[a].LengthKm }
