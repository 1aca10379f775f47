package sim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evacsim/roadnet"
)

// AdvanceTick moves every active unit by one tick and returns the ids that
// terminated during it. tick must be greater than the previous tick index;
// the elapsed time of a journey is (termination tick − spawn tick) ticks.
//
// Remaining distance drops by the unit's speed while it stays on an arc.
// When it crosses onto a new arc, Remaining is recomputed as the length of
// the rest of the route minus the distance already covered on that arc, so
// it never drifts from the route geometry.
func (s *Simulator) AdvanceTick(tick int) ([]UnitID, error) {
	if tick <= s.tick {
		return nil, fmt.Errorf("%w: got %d after %d", ErrTickOrder, tick, s.tick)
	}
	s.tick = tick
	s.terminated = nil
	s.arrivals = nil

	// Terminated units stay in the map until compact, so order is safe to range.
	for _, id := range s.order {
		s.step(s.units[id])
	}
	s.compact()

	return s.Terminated(), nil
}

// step runs speed update, movement, arrival and arc crossing for one unit.
func (s *Simulator) step(u *unit) {
	arc := s.arcOf(u)

	// 1) Cars react to congestion; pedestrians keep walking speed.
	if u.mode == ModeCar {
		u.speed = s.nextSpeed(u.speed, arc)
	}

	// 2) Move.
	u.travelled += u.speed
	u.remaining -= u.speed

	// 3) Close enough to the sink counts as arrived.
	if u.remaining <= s.cfg.TerminateTolerance {
		s.terminate(u)
		return
	}

	// 4) Carry surplus distance over as many arcs as it covers.
	for u.travelled > arc.LengthKm {
		// The last route arc ends at the sink.
		if u.lastArc() {
			s.terminate(u)
			return
		}
		// A stopped unit cannot carry distance forward.
		if u.speed <= 0 {
			break
		}
		// Fraction of a tick left over after reaching the arc head.
		leftover := (u.travelled - arc.LengthKm) / u.speed

		// 4a) Hand occupancy from the old arc to the new one.
		if u.mode == ModeCar {
			s.occupancyFault(s.g.DecrementOccupancy(arc.ID), u)
		}
		u.arcIdx++
		arc = s.arcOf(u)
		if u.mode == ModeCar {
			s.occupancyFault(s.g.IncrementOccupancy(arc.ID), u)
			u.speed = s.nextSpeed(u.speed, arc)
		}

		// 4b) Spend the leftover at the new arc's speed.
		u.travelled = leftover * u.speed
		u.remaining = u.suffix[u.arcIdx] - u.travelled
		if u.remaining <= s.cfg.TerminateTolerance {
			s.terminate(u)
			return
		}
	}
}

// nextSpeed applies the congestion cap and the over-braking draw to a car
// entering or staying on arc.
//
// The cap is the free-flow speed unless more than one car shares the arc and
// the per-car spacing length/occupancy is below it. A braking event never
// raises speed above the car's prior speed; otherwise the car accelerates
// toward the cap. The result is always within [0, FreeFlow].
func (s *Simulator) nextSpeed(current float64, arc roadnet.Arc) float64 {
	limit := s.speedCap(arc)
	if s.rng.Float64() < s.cfg.OverBrakeProbability {
		keep := 1 - s.cfg.OverBrakeFactor
		return math.Min(keep*limit, keep*current)
	}

	return math.Min(current+s.cfg.AccelerationRate, limit)
}

// speedCap is the congestion-limited maximum speed on arc.
func (s *Simulator) speedCap(arc roadnet.Arc) float64 {
	occupancy := s.g.Occupancy(arc.ID)
	// Zero occupancy short-circuits before the division.
	spacing := arc.FreeFlow
	if occupancy > 0 {
		spacing = arc.LengthKm / float64(occupancy)
	}
	if occupancy > 1 && spacing < arc.FreeFlow {
		return spacing
	}

	return arc.FreeFlow
}

func (s *Simulator) arcOf(u *unit) roadnet.Arc {
	arc, _ := s.g.Arc(u.arc())
	return arc
}

// compact drops terminated units from the active order, keeping it sorted.
func (s *Simulator) compact() {
	kept := s.order[:0]
	for _, id := range s.order {
		if s.units[id].done {
			delete(s.units, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
}
