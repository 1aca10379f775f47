package roadnet_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/evacsim/roadnet"
)

// scenarioTick makes a single carriageway exactly 2 km per tick (96 km/h · 75 s).
const scenarioTick = 75 * time.Second

type GraphSuite struct {
	suite.Suite
	g *roadnet.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = roadnet.NewGraph(roadnet.WithTickDuration(scenarioTick))
}

func (s *GraphSuite) node(name string) roadnet.NodeID {
	id, ok := s.g.Node(name)
	s.Require().True(ok, "node %q missing", name)

	return id
}

func (s *GraphSuite) TestBuildCreatesReversePairs() {
	require := s.Require()
	err := s.g.BuildFromEdges([]roadnet.EdgeRecord{
		{StartNode: "A", EndNode: "B", LengthMeters: 10000, FormOfWay: "Single Carriageway"},
		{StartNode: "B", EndNode: "C", LengthMeters: 500, FormOfWay: "Dual Carriageway"},
	})
	require.NoError(err)
	require.Equal(3, s.g.NodeCount())
	require.Equal(4, s.g.ArcCount())

	for a := 0; a < s.g.ArcCount(); a++ {
		arc, err := s.g.Arc(roadnet.ArcID(a))
		require.NoError(err)
		rev, err := s.g.Arc(arc.Reverse)
		require.NoError(err)
		require.Equal(arc.ID, rev.Reverse)
		require.Equal(arc.From, rev.To)
		require.Equal(arc.To, rev.From)
		require.Equal(arc.LengthKm, rev.LengthKm)
		require.Equal(arc.FreeFlow, rev.FreeFlow)
		require.Zero(s.g.Occupancy(arc.ID))
	}

	ab, ok := s.g.ArcBetween(s.node("A"), s.node("B"))
	require.True(ok)
	arc, _ := s.g.Arc(ab)
	require.InDelta(10.0, arc.LengthKm, 1e-12)
	require.InDelta(2.0, arc.FreeFlow, 1e-12)
	require.Equal(roadnet.ClassSingleCarriageway, arc.Class)

	bc, ok := s.g.ArcBetween(s.node("B"), s.node("C"))
	require.True(ok)
	arc, _ = s.g.Arc(bc)
	require.InDelta(0.5, arc.LengthKm, 1e-12)
	require.InDelta(112.0*75/3600, arc.FreeFlow, 1e-12)
}

func (s *GraphSuite) TestSpeedTableDefaultsToTwentyMph() {
	require := s.Require()
	a, err := s.g.AddEdge(roadnet.EdgeRecord{StartNode: "X", EndNode: "Y", LengthMeters: 100, FormOfWay: "Roundabout"})
	require.NoError(err)
	arc, _ := s.g.Arc(a)
	require.Equal(roadnet.ClassOther, arc.Class)
	require.InDelta(32.0*75/3600, arc.FreeFlow, 1e-12)
}

func (s *GraphSuite) TestInvalidEdgesRejected() {
	require := s.Require()
	bad := []roadnet.EdgeRecord{
		{StartNode: "A", EndNode: "B", LengthMeters: 0},
		{StartNode: "A", EndNode: "B", LengthMeters: -1},
		{StartNode: "A", EndNode: "B", LengthMeters: math.NaN()},
		{StartNode: "A", EndNode: "B", LengthMeters: math.Inf(1)},
		{StartNode: "", EndNode: "B", LengthMeters: 10},
	}
	for _, rec := range bad {
		_, err := s.g.AddEdge(rec)
		require.ErrorIs(err, roadnet.ErrInvalidEdge, "record %+v", rec)
	}
	require.Zero(s.g.NodeCount())
}

func (s *GraphSuite) TestBuildIsAllOrNothing() {
	require := s.Require()
	err := s.g.BuildFromEdges([]roadnet.EdgeRecord{
		{StartNode: "A", EndNode: "B", LengthMeters: 100},
		{StartNode: "B", EndNode: "C", LengthMeters: 0},
	})
	require.ErrorIs(err, roadnet.ErrInvalidEdge)
	require.Zero(s.g.ArcCount())
}

func (s *GraphSuite) TestArcBetweenPicksShortestParallel() {
	require := s.Require()
	require.NoError(s.g.BuildFromEdges([]roadnet.EdgeRecord{
		{StartNode: "A", EndNode: "B", LengthMeters: 900},
		{StartNode: "A", EndNode: "B", LengthMeters: 300},
	}))
	a, ok := s.g.ArcBetween(s.node("A"), s.node("B"))
	require.True(ok)
	arc, _ := s.g.Arc(a)
	require.InDelta(0.3, arc.LengthKm, 1e-12)

	_, ok = s.g.ArcBetween(s.node("A"), roadnet.NodeID(42))
	require.False(ok)
}

func (s *GraphSuite) TestOccupancyCounters() {
	require := s.Require()
	a, err := s.g.AddEdge(roadnet.EdgeRecord{StartNode: "A", EndNode: "B", LengthMeters: 100})
	require.NoError(err)
	arc, _ := s.g.Arc(a)

	require.NoError(s.g.IncrementOccupancy(a))
	require.NoError(s.g.IncrementOccupancy(a))
	require.Equal(2, s.g.Occupancy(a))
	require.Zero(s.g.Occupancy(arc.Reverse), "reverse direction is independent")
	require.Equal(2, s.g.TotalOccupancy())

	require.NoError(s.g.DecrementOccupancy(a))
	require.NoError(s.g.DecrementOccupancy(a))
	require.ErrorIs(s.g.DecrementOccupancy(a), roadnet.ErrNegativeOccupancy)
	require.Zero(s.g.Occupancy(a))

	require.ErrorIs(s.g.IncrementOccupancy(roadnet.ArcID(99)), roadnet.ErrUnknownArc)
	require.ErrorIs(s.g.DecrementOccupancy(roadnet.ArcID(-1)), roadnet.ErrUnknownArc)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := s.Require()
	require.NoError(s.g.BuildFromEdges([]roadnet.EdgeRecord{
		{StartNode: "A", EndNode: "B", LengthMeters: 100},
	}))
	s.g.SetSink("B")
	require.NoError(s.g.ComputeShortestPaths())
	a, _ := s.g.ArcBetween(s.node("A"), s.node("B"))
	require.NoError(s.g.IncrementOccupancy(a))

	c := s.g.Clone()
	require.Zero(c.Occupancy(a), "clone starts empty")
	require.True(c.HasShortestPaths())
	require.NoError(c.IncrementOccupancy(a))
	require.NoError(c.IncrementOccupancy(a))
	require.Equal(1, s.g.Occupancy(a))

	_, err := c.AddEdge(roadnet.EdgeRecord{StartNode: "B", EndNode: "C", LengthMeters: 100})
	require.NoError(err)
	require.Equal(2, s.g.NodeCount())
	require.True(s.g.HasShortestPaths())

	s.g.ResetOccupancy()
	require.Zero(s.g.TotalOccupancy())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestClassifyFormOfWay(t *testing.T) {
	cases := []struct {
		in   string
		want roadnet.RoadClass
	}{
		{"Single Carriageway", roadnet.ClassSingleCarriageway},
		{"  dual carriageway ", roadnet.ClassDualCarriageway},
		{"Collapsed Dual Carriageway", roadnet.ClassOther},
		{"Slip Road", roadnet.ClassOther},
		{"", roadnet.ClassOther},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, roadnet.ClassifyFormOfWay(tc.in), "form of way %q", tc.in)
	}
}

func TestWithTickDuration_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { roadnet.WithTickDuration(0) })
	require.Panics(t, func() { roadnet.WithSpeedTable(roadnet.SpeedTable{0, 1, 1}) })
}
