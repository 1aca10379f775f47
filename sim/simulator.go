package sim

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/evacsim/roadnet"
)

// Option configures a Simulator at construction.
type Option func(*Simulator)

// WithRandSource injects the over-braking random source. Panics on nil.
func WithRandSource(r RandSource) Option {
	if r == nil {
		panic("sim: WithRandSource requires a non-nil source")
	}

	return func(s *Simulator) { s.rng = r }
}

// WithSeed uses NewRandSource(seed) as the random source.
func WithSeed(seed int64) Option {
	return func(s *Simulator) { s.rng = NewRandSource(seed) }
}

// WithLogger sets the structured logger for spawn and termination events.
// Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("sim: WithLogger requires a non-nil logger")
	}

	return func(s *Simulator) { s.log = l }
}

// WithRunID overrides the random run id.
func WithRunID(id uuid.UUID) Option {
	return func(s *Simulator) { s.runID = id }
}

// Simulator owns every travel unit of one run.
//
// The sink is read from the graph on every Spawn, so a recomputed tree
// applies to units spawned after it. Units already travelling keep the
// route they were given.
type Simulator struct {
	cfg   Config             // immutable after New
	g     *roadnet.Graph     // routes, free-flow speeds and occupancy
	walk  float64            // pedestrian speed in km/tick
	rng   RandSource         // over-braking draws
	log   logrus.FieldLogger // carries run_id
	runID uuid.UUID

	tick   int              // last advanced tick, 0 before the first
	nextID UnitID           // next id to hand out
	units  map[UnitID]*unit // active units by id
	order  []UnitID         // active ids, ascending

	spawnedBuf []UnitID        // drained by NewlySpawned
	terminated []UnitID        // terminated since the last tick began
	arrivals   []Position      // final positions of terminated
	metrics    []JourneyMetric // one per terminated car, in order

	// Aggregates, kept in step with spawn and terminate.
	activeCars      int
	activeWalking   int
	occupantsInCars int
	evacuated       int
	spawned         int
}

// New creates a Simulator over g, which must carry a computed sink tree and
// the same tick duration as cfg. The Simulator mutates g's occupancy.
func New(g *roadnet.Graph, cfg Config, opts ...Option) (*Simulator, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g.TickDuration() != cfg.TickDuration {
		return nil, fmt.Errorf("%w: graph tick %v differs from config tick %v",
			ErrConfiguration, g.TickDuration(), cfg.TickDuration)
	}
	if _, ok := g.Sink(); !ok {
		return nil, fmt.Errorf("%w: graph has no shortest-path tree", ErrConfiguration)
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := &Simulator{
		cfg:    cfg,
		g:      g,
		walk:   g.KmhToPerTick(cfg.WalkingSpeedKmh),
		rng:    NewRandSource(0),
		log:    quiet,
		runID:  uuid.New(),
		nextID: 1,
		units:  make(map[UnitID]*unit),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("run_id", s.runID.String())

	return s, nil
}

// Config returns the simulator's configuration.
func (s *Simulator) Config() Config { return s.cfg }

// Graph returns the network the simulator runs on.
func (s *Simulator) Graph() *roadnet.Graph { return s.g }

// RunID identifies this run in logs and summaries.
func (s *Simulator) RunID() uuid.UUID { return s.runID }

// Tick is the index of the last advanced tick, 0 before the first.
func (s *Simulator) Tick() int { return s.tick }

// ActiveCars is the number of cars still travelling.
func (s *Simulator) ActiveCars() int { return s.activeCars }

// ActiveWalking is the number of pedestrians still travelling.
func (s *Simulator) ActiveWalking() int { return s.activeWalking }

// OccupantsInCars is the number of evacuees in active cars.
func (s *Simulator) OccupantsInCars() int { return s.occupantsInCars }

// TotalEvacuating is everyone still on the way.
func (s *Simulator) TotalEvacuating() int { return s.occupantsInCars + s.activeWalking }

// TotalEvacuated is everyone who has reached the sink.
func (s *Simulator) TotalEvacuated() int { return s.evacuated }

// TotalSpawned is every evacuee ever handed to Spawn and turned into units.
func (s *Simulator) TotalSpawned() int { return s.spawned }

// AverageOccupantsPerCar is 0 when no car is active.
func (s *Simulator) AverageOccupantsPerCar() float64 {
	if s.activeCars == 0 {
		return 0
	}

	return float64(s.occupantsInCars) / float64(s.activeCars)
}

// Drained reports whether no unit is active.
func (s *Simulator) Drained() bool { return len(s.order) == 0 }

// Unit returns a copy of an active unit.
func (s *Simulator) Unit(id UnitID) (TravelUnit, bool) {
	u, ok := s.units[id]
	if !ok {
		return TravelUnit{}, false
	}

	return u.snapshot(), true
}

// NewlySpawned drains and returns the ids spawned since the previous call.
func (s *Simulator) NewlySpawned() []UnitID {
	ids := s.spawnedBuf
	s.spawnedBuf = nil

	return ids
}

// Terminated returns the ids terminated by the last tick (plus any forced
// terminations since).
func (s *Simulator) Terminated() []UnitID {
	return append([]UnitID(nil), s.terminated...)
}

// Metrics returns every journey recorded so far, in termination order.
func (s *Simulator) Metrics() []JourneyMetric {
	return append([]JourneyMetric(nil), s.metrics...)
}

// occupancyFault reports an occupancy update the graph rejected. Route arcs
// come from the graph itself, so a rejection means the counts were changed
// behind the simulator's back.
func (s *Simulator) occupancyFault(err error, u *unit) {
	if err == nil {
		return
	}
	s.log.WithError(err).WithFields(logrus.Fields{
		"unit_id": u.id,
		"arc":     u.arc(),
		"tick":    s.tick,
	}).Warn("occupancy update rejected")
}
