package main

import (
	"time"

	"github.com/katalvlaran/evacsim/roadnet"
)

// townRoads is a market town on a river. Everyone evacuates to the school.
var townRoads = []roadnet.EdgeRecord{
	{StartNode: "riverside", EndNode: "market", LengthMeters: 1200, FormOfWay: "Single Carriageway"},
	{StartNode: "market", EndNode: "bridge", LengthMeters: 800, FormOfWay: "Single Carriageway"},
	{StartNode: "bridge", EndNode: "bypass", LengthMeters: 2600, FormOfWay: "Single Carriageway"},
	{StartNode: "bypass", EndNode: "school", LengthMeters: 5400, FormOfWay: "Dual Carriageway"},
	{StartNode: "market", EndNode: "chapel", LengthMeters: 450},
	{StartNode: "chapel", EndNode: "hill lane", LengthMeters: 3100},
	{StartNode: "hill lane", EndNode: "school", LengthMeters: 1900},
	{StartNode: "riverside", EndNode: "mill", LengthMeters: 700},
	{StartNode: "mill", EndNode: "bridge", LengthMeters: 1500},
	{StartNode: "bypass", EndNode: "farm", LengthMeters: 3300, FormOfWay: "Single Carriageway"},
	{StartNode: "farm", EndNode: "quarry", LengthMeters: 2700},
	{StartNode: "quarry", EndNode: "school", LengthMeters: 6200, FormOfWay: "Single Carriageway"},
}

func buildTown(tick time.Duration) (*roadnet.Graph, error) {
	g := roadnet.NewGraph(roadnet.WithTickDuration(tick))
	if err := g.BuildFromEdges(townRoads); err != nil {
		return nil, err
	}
	g.SetSink("school")
	if err := g.ComputeShortestPaths(); err != nil {
		return nil, err
	}

	return g, nil
}
