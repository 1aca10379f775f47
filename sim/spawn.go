package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/evacsim/roadnet"
)

// Spawn turns evacuees appearing at start into travel units and returns their ids.
//
// Behaviour:
//   - start == sink or evacuees <= 0: no-op, empty result.
//   - route length ≤ MaxWalkingDistance: one pedestrian per evacuee.
//   - otherwise ceil(evacuees/VehicleCapacity) cars; all full except the
//     last, which holds the remainder (never zero). Each car adds one to the
//     occupancy of the first route arc and starts at speed 0.
//
// The sink and routes are those of the graph's current tree.
//
// Errors: ErrConfiguration when the graph has no tree; ErrUnreachableNode
// (wrapped with the node name) when start has no route; roadnet.ErrUnknownNode
// for a handle outside the graph.
func (s *Simulator) Spawn(start roadnet.NodeID, evacuees int) ([]UnitID, error) {
	if evacuees <= 0 {
		return nil, nil
	}
	// 1) Resolve the sink of the current tree.
	sink, ok := s.g.Sink()
	if !ok {
		return nil, fmt.Errorf("%w: spawn needs a shortest-path tree", ErrConfiguration)
	}
	if start == sink {
		return nil, nil
	}

	// 2) One route shared by every unit of this spawn.
	route, err := s.g.Route(start)
	if err != nil {
		return nil, fmt.Errorf("sim: spawn %d evacuees at %q: %w", evacuees, s.g.NodeName(start), err)
	}
	if len(route.Arcs) == 0 {
		return nil, nil
	}
	suffix := suffixLengths(s.g, route.Arcs)

	// 3) Short routes walk, the rest drive.
	var ids []UnitID
	if route.LengthKm <= s.cfg.MaxWalkingDistance {
		ids = make([]UnitID, 0, evacuees)
		for i := 0; i < evacuees; i++ {
			u := s.newUnit(ModePedestrian, route, suffix, 1)
			u.speed = s.walk
			s.activeWalking++
			ids = append(ids, u.id)
		}
	} else {
		// 4) Pack cars full; the last takes the remainder.
		capacity := s.cfg.VehicleCapacity
		cars := (evacuees + capacity - 1) / capacity
		ids = make([]UnitID, 0, cars)
		for i := 0; i < cars; i++ {
			occupants := capacity
			if i == cars-1 {
				occupants = evacuees - (cars-1)*capacity
			}
			u := s.newUnit(ModeCar, route, suffix, occupants)
			s.occupancyFault(s.g.IncrementOccupancy(u.arc()), u)
			s.activeCars++
			s.occupantsInCars += occupants
			ids = append(ids, u.id)
		}
	}

	// 5) Totals and the NewlySpawned buffer.
	s.spawned += evacuees
	s.spawnedBuf = append(s.spawnedBuf, ids...)

	s.log.WithFields(logrus.Fields{
		"node":     s.g.NodeName(start),
		"evacuees": evacuees,
		"units":    len(ids),
		"mode":     s.units[ids[0]].mode.String(),
		"route_km": route.LengthKm,
		"tick":     s.tick,
	}).Debug("spawned")

	return ids, nil
}

// newUnit allocates the next id and registers the unit as active.
func (s *Simulator) newUnit(mode Mode, route roadnet.Route, suffix []float64, occupants int) *unit {
	u := &unit{
		id:        s.nextID,
		mode:      mode,
		route:     route,
		suffix:    suffix,
		remaining: route.LengthKm,
		occupants: occupants,
		spawnTick: s.tick,
	}
	s.nextID++
	s.units[u.id] = u
	s.order = append(s.order, u.id)

	return u
}
