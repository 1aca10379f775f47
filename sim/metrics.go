package sim

import (
	"time"

	"github.com/google/uuid"
)

// JourneyMetric is recorded once per car at termination.
//
// IdealTime is the route at free-flow speeds, independent of congestion.
// ActualTime is (TerminationTick − SpawnTick) ticks.
type JourneyMetric struct {
	UnitID          UnitID
	Occupants       int
	IdealTime       time.Duration
	ActualTime      time.Duration
	SpawnTick       int
	TerminationTick int
}

// Delay is the time lost to congestion, acceleration and braking.
func (m JourneyMetric) Delay() time.Duration { return m.ActualTime - m.IdealTime }

// Summary aggregates a run for reporting.
type Summary struct {
	RunID           uuid.UUID
	Tick            int
	ActiveCars      int
	ActiveWalking   int
	OccupantsInCars int
	TotalEvacuating int
	TotalEvacuated  int
	TotalSpawned    int
	Journeys        int
	MeanIdeal       time.Duration
	MeanActual      time.Duration
	MeanDelay       time.Duration
	// SimulatedTime is Tick ticks of TickDuration.
	SimulatedTime time.Duration
}

// Summary computes aggregates and journey means. Means are 0 without journeys.
func (s *Simulator) Summary() Summary {
	sum := Summary{
		RunID:           s.runID,
		Tick:            s.tick,
		ActiveCars:      s.activeCars,
		ActiveWalking:   s.activeWalking,
		OccupantsInCars: s.occupantsInCars,
		TotalEvacuating: s.TotalEvacuating(),
		TotalEvacuated:  s.evacuated,
		TotalSpawned:    s.spawned,
		Journeys:        len(s.metrics),
		SimulatedTime:   s.cfg.ticks(float64(s.tick)),
	}
	if len(s.metrics) == 0 {
		return sum
	}

	var ideal, actual time.Duration
	for _, m := range s.metrics {
		ideal += m.IdealTime
		actual += m.ActualTime
	}
	n := time.Duration(len(s.metrics))
	sum.MeanIdeal = ideal / n
	sum.MeanActual = actual / n
	sum.MeanDelay = sum.MeanActual - sum.MeanIdeal

	return sum
}
