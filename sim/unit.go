package sim

import "github.com/katalvlaran/evacsim/roadnet"

// UnitID identifies a travel unit. Ids start at 1 and are never reused.
type UnitID uint64

// Mode is how a unit travels.
type Mode int

const (
	// ModeCar units carry up to VehicleCapacity occupants and hold arc occupancy.
	ModeCar Mode = iota
	// ModePedestrian units carry one evacuee at constant walking speed.
	ModePedestrian
)

func (m Mode) String() string {
	if m == ModePedestrian {
		return "pedestrian"
	}

	return "car"
}

// Status is the externally visible state of a unit.
type Status int

const (
	// StatusActive is a car still travelling.
	StatusActive Status = iota
	// StatusWalking is a pedestrian still travelling.
	StatusWalking
	// StatusCompleted is a unit that has terminated.
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusWalking:
		return "walking"
	case StatusCompleted:
		return "completed"
	default:
		return "active"
	}
}

// TravelUnit is a copy of one unit's state. Its Route slices are owned by
// the caller.
type TravelUnit struct {
	ID        UnitID
	Mode      Mode
	Route     roadnet.Route
	ArcIndex  int
	Arc       roadnet.ArcID
	Travelled float64
	Speed     float64
	Remaining float64
	Occupants int
	SpawnTick int
}

// unit is the mutable simulator-side record.
type unit struct {
	id    UnitID
	mode  Mode
	route roadnet.Route
	// suffix[i] is the length of route.Arcs[i:].
	suffix    []float64
	arcIdx    int
	travelled float64
	speed     float64
	remaining float64
	occupants int
	spawnTick int
	done      bool
}

func (u *unit) arc() roadnet.ArcID { return u.route.Arcs[u.arcIdx] }

func (u *unit) lastArc() bool { return u.arcIdx == len(u.route.Arcs)-1 }

func (u *unit) snapshot() TravelUnit {
	route := roadnet.Route{
		Nodes:    append([]roadnet.NodeID(nil), u.route.Nodes...),
		Arcs:     append([]roadnet.ArcID(nil), u.route.Arcs...),
		LengthKm: u.route.LengthKm,
	}

	return TravelUnit{
		ID:        u.id,
		Mode:      u.mode,
		Route:     route,
		ArcIndex:  u.arcIdx,
		Arc:       u.arc(),
		Travelled: u.travelled,
		Speed:     u.speed,
		Remaining: u.remaining,
		Occupants: u.occupants,
		SpawnTick: u.spawnTick,
	}
}

// suffixLengths returns s with s[i] = Σ length(arcs[i:]).
func suffixLengths(g *roadnet.Graph, arcs []roadnet.ArcID) []float64 {
	s := make([]float64, len(arcs))
	var acc float64
	for i := len(arcs) - 1; i >= 0; i-- {
		arc, _ := g.Arc(arcs[i])
		acc += arc.LengthKm
		s[i] = acc
	}

	return s
}
