package roadnet

import "fmt"

// IncrementOccupancy adds one car to arc a.
func (g *Graph) IncrementOccupancy(a ArcID) error {
	if !g.hasArc(a) {
		return fmt.Errorf("%w: %d", ErrUnknownArc, a)
	}
	g.occupancy[a]++

	return nil
}

// DecrementOccupancy removes one car from arc a. The counter never goes
// below zero; an empty arc yields ErrNegativeOccupancy.
func (g *Graph) DecrementOccupancy(a ArcID) error {
	if !g.hasArc(a) {
		return fmt.Errorf("%w: %d", ErrUnknownArc, a)
	}
	if g.occupancy[a] == 0 {
		return fmt.Errorf("%w: arc %d", ErrNegativeOccupancy, a)
	}
	g.occupancy[a]--

	return nil
}

// Occupancy returns the number of cars on arc a (0 for unknown arcs).
func (g *Graph) Occupancy(a ArcID) int {
	if !g.hasArc(a) {
		return 0
	}

	return g.occupancy[a]
}

// TotalOccupancy sums occupancy over all arcs.
// Complexity: O(E)
func (g *Graph) TotalOccupancy() int {
	total := 0
	for _, c := range g.occupancy {
		total += c
	}

	return total
}

// ResetOccupancy clears every counter.
func (g *Graph) ResetOccupancy() {
	for i := range g.occupancy {
		g.occupancy[i] = 0
	}
}
