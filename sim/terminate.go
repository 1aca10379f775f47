package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/evacsim/roadnet"
)

// Terminate removes an active unit immediately, between ticks, with the same
// bookkeeping as an arrival at the current tick. The id shows up in
// Terminated and Arrivals until the next AdvanceTick.
func (s *Simulator) Terminate(id UnitID) error {
	u, ok := s.units[id]
	if !ok || u.done {
		return fmt.Errorf("%w: %d", ErrUnknownUnit, id)
	}
	s.terminate(u)
	s.compact()

	return nil
}

// terminate releases a unit's occupancy, moves its evacuees to the evacuated
// total and records a journey metric for cars. A unit terminates once.
func (s *Simulator) terminate(u *unit) {
	if u.done {
		return
	}
	u.done = true

	switch u.mode {
	case ModeCar:
		s.occupancyFault(s.g.DecrementOccupancy(u.arc()), u)
		s.activeCars--
		s.occupantsInCars -= u.occupants
		s.evacuated += u.occupants
		s.metrics = append(s.metrics, JourneyMetric{
			UnitID:          u.id,
			Occupants:       u.occupants,
			IdealTime:       s.cfg.ticks(s.g.IdealTicks(u.route.Arcs)),
			ActualTime:      s.cfg.ticks(float64(s.tick - u.spawnTick)),
			SpawnTick:       u.spawnTick,
			TerminationTick: s.tick,
		})
	case ModePedestrian:
		s.activeWalking--
		s.evacuated++
	}

	s.terminated = append(s.terminated, u.id)
	arc := s.arcOf(u)
	at := arc.From
	if u.remaining <= s.cfg.TerminateTolerance || u.travelled >= arc.LengthKm {
		at = arc.To
	}
	s.arrivals = append(s.arrivals, Position{
		UnitID:      u.id,
		Mode:        u.mode,
		Status:      StatusCompleted,
		CurrentNode: at,
		NextNode:    roadnet.None,
	})

	s.log.WithFields(logrus.Fields{
		"unit_id":   u.id,
		"mode":      u.mode.String(),
		"occupants": u.occupants,
		"spawn":     u.spawnTick,
		"tick":      s.tick,
	}).Debug("terminated")
}
