package sim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacsim/roadnet"
	"github.com/katalvlaran/evacsim/sim"
)

// villageRecords is a ring road around a market town with spurs. Sink "hub".
func villageRecords() []roadnet.EdgeRecord {
	return []roadnet.EdgeRecord{
		{StartNode: "hub", EndNode: "north", LengthMeters: 3000, FormOfWay: "Dual Carriageway"},
		{StartNode: "hub", EndNode: "south", LengthMeters: 2500, FormOfWay: "Single Carriageway"},
		{StartNode: "north", EndNode: "east", LengthMeters: 1800},
		{StartNode: "east", EndNode: "south", LengthMeters: 2200, FormOfWay: "Single Carriageway"},
		{StartNode: "south", EndNode: "west", LengthMeters: 900},
		{StartNode: "west", EndNode: "north", LengthMeters: 4100, FormOfWay: "Single Carriageway"},
		{StartNode: "east", EndNode: "farm", LengthMeters: 600},
		{StartNode: "west", EndNode: "school", LengthMeters: 350},
		{StartNode: "hub", EndNode: "chapel", LengthMeters: 400},
	}
}

func village(t *testing.T) *roadnet.Graph {
	t.Helper()
	g := roadnet.NewGraph(roadnet.WithTickDuration(scenarioTick))
	require.NoError(t, g.BuildFromEdges(villageRecords()))
	g.SetSink("hub")
	require.NoError(t, g.ComputeShortestPaths())

	return g
}

// noisyConfig brakes often and accelerates in small steps.
func noisyConfig() sim.Config {
	cfg := scenarioConfig()
	cfg.AccelerationRate = 0.3
	cfg.OverBrakeProbability = 0.3
	cfg.OverBrakeFactor = 0.25

	return cfg
}

type spawnEvent struct {
	tick     int
	node     string
	evacuees int
}

var villageSchedule = []spawnEvent{
	{0, "farm", 9},
	{0, "school", 13},
	{0, "chapel", 3},
	{2, "east", 17},
	{3, "west", 4},
	{3, "north", 30},
	{5, "farm", 2},
	{8, "south", 11},
}

// runVillage drives the schedule to completion, calling check after every tick.
func runVillage(t *testing.T, s *sim.Simulator, g *roadnet.Graph, check func()) {
	t.Helper()
	next := 0
	spawnDue := func(tick int) {
		for next < len(villageSchedule) && villageSchedule[next].tick <= tick {
			ev := villageSchedule[next]
			_, err := s.Spawn(node(t, g, ev.node), ev.evacuees)
			require.NoError(t, err)
			next++
		}
	}

	spawnDue(0)
	for tick := 1; tick <= 400; tick++ {
		_, err := s.AdvanceTick(tick)
		require.NoError(t, err)
		check()
		spawnDue(tick)
		if s.Drained() && next == len(villageSchedule) {
			return
		}
	}
	t.Fatalf("not drained after 400 ticks: %d units active", s.ActiveCars()+s.ActiveWalking())
}

func TestRunInvariants(t *testing.T) {
	g := village(t)
	s := newSim(t, g, noisyConfig(), sim.WithSeed(7))
	seen := make(map[sim.UnitID]bool)

	runVillage(t, s, g, func() {
		require.Equal(t, s.ActiveCars(), g.TotalOccupancy())
		require.Equal(t, s.TotalSpawned(), s.OccupantsInCars()+s.ActiveWalking()+s.TotalEvacuated())

		active := make(map[sim.UnitID]bool)
		for _, p := range s.Positions() {
			active[p.UnitID] = true
			u, ok := s.Unit(p.UnitID)
			require.True(t, ok)
			arc, err := g.Arc(u.Arc)
			require.NoError(t, err)
			require.GreaterOrEqual(t, p.Speed, 0.0)
			if p.Mode == sim.ModeCar {
				require.LessOrEqual(t, p.Speed, arc.FreeFlow+1e-12)
			}
			require.LessOrEqual(t, p.Travelled, arc.LengthKm+1e-9, "unit %d", p.UnitID)
		}
		for _, id := range s.Terminated() {
			require.False(t, seen[id], "unit %d terminated twice", id)
			require.False(t, active[id], "terminated unit %d still positioned", id)
			seen[id] = true
		}
	})

	require.Equal(t, 89, s.TotalSpawned())
	require.Equal(t, 89, s.TotalEvacuated())
	require.Zero(t, g.TotalOccupancy())
	for _, m := range s.Metrics() {
		require.GreaterOrEqual(t, m.ActualTime, m.IdealTime-scenarioTick,
			"unit %d beat free-flow by more than a tick", m.UnitID)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	base := village(t)
	run := func(seed int64) []sim.JourneyMetric {
		g := base.Clone()
		s := newSim(t, g, noisyConfig(), sim.WithSeed(seed))
		runVillage(t, s, g, func() {})

		return s.Metrics()
	}

	a, b := run(11), run(11)
	require.Equal(t, a, b)
	require.NotEmpty(t, a)
	require.Zero(t, base.TotalOccupancy(), "clones leave the parsed graph untouched")
}

func TestZeroSeedUsesDefault(t *testing.T) {
	a, b := sim.NewRandSource(0), sim.NewRandSource(1)
	for i := 0; i < 5; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestStreamSeed(t *testing.T) {
	seen := make(map[int64]uint64)
	for stream := uint64(0); stream < 64; stream++ {
		seed := sim.StreamSeed(42, stream)
		require.Equal(t, seed, sim.StreamSeed(42, stream), "pure")
		prev, dup := seen[seed]
		require.False(t, dup, "streams %d and %d collide", prev, stream)
		seen[seed] = stream
	}
	require.NotEqual(t, sim.StreamSeed(1, 0), sim.StreamSeed(2, 0))
}
