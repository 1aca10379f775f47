package sim

import "github.com/katalvlaran/evacsim/roadnet"

// Position is one unit's place in a snapshot. A unit on arc u→v is at
// CurrentNode u heading to NextNode v; HasNext is false when there is no
// next node (completed units).
type Position struct {
	UnitID      UnitID
	Mode        Mode
	Status      Status
	CurrentNode roadnet.NodeID
	NextNode    roadnet.NodeID
	HasNext     bool
	Speed       float64
	Travelled   float64
	Remaining   float64
}

// Positions snapshots every active unit in ascending id order. Pure read.
func (s *Simulator) Positions() []Position {
	res := make([]Position, 0, len(s.order))
	for _, id := range s.order {
		u := s.units[id]
		arc := s.arcOf(u)
		status := StatusActive
		if u.mode == ModePedestrian {
			status = StatusWalking
		}
		res = append(res, Position{
			UnitID:      u.id,
			Mode:        u.mode,
			Status:      status,
			CurrentNode: arc.From,
			NextNode:    arc.To,
			HasNext:     true,
			Speed:       u.speed,
			Travelled:   u.travelled,
			Remaining:   u.remaining,
		})
	}

	return res
}

// Arrivals lists the units terminated by the last tick, with StatusCompleted,
// positioned where they stopped. These ids never appear in Positions again.
func (s *Simulator) Arrivals() []Position {
	return append([]Position(nil), s.arrivals...)
}
