package sim

import (
	"fmt"
	"math"
	"time"
)

// Config holds every simulation constant. It is copied into the Simulator at
// construction and never mutated afterwards.
type Config struct {
	// TickDuration is the simulated length of one tick. Must match the graph.
	TickDuration time.Duration
	// AccelerationRate is the speed gained per tick, in km/tick.
	AccelerationRate float64
	// OverBrakeProbability is the chance per speed update of a braking event.
	OverBrakeProbability float64
	// OverBrakeFactor is the fraction of speed lost in a braking event.
	OverBrakeFactor float64
	// MaxWalkingDistance is the route length in km at or below which
	// evacuees walk instead of driving.
	MaxWalkingDistance float64
	// TerminateTolerance is the remaining distance in km treated as arrived.
	TerminateTolerance float64
	// VehicleCapacity is the number of occupants per car.
	VehicleCapacity int
	// WalkingSpeedKmh is the constant pedestrian speed.
	WalkingSpeedKmh float64
}

// DefaultConfig returns defaults for one-second ticks: roughly 2.5 m/s²
// acceleration, a 10% chance of shedding 20% of speed, a 500 m walking
// threshold, a 1 m arrival tolerance and four seats per car.
func DefaultConfig() Config {
	return Config{
		TickDuration:         time.Second,
		AccelerationRate:     0.0025,
		OverBrakeProbability: 0.1,
		OverBrakeFactor:      0.2,
		MaxWalkingDistance:   0.5,
		TerminateTolerance:   0.001,
		VehicleCapacity:      4,
		WalkingSpeedKmh:      5,
	}
}

// Validate reports the first field out of range, wrapped in ErrConfiguration.
func (c Config) Validate() error {
	switch {
	case c.TickDuration <= 0:
		return fmt.Errorf("%w: TickDuration must be positive, got %v", ErrConfiguration, c.TickDuration)
	case !positive(c.AccelerationRate):
		return fmt.Errorf("%w: AccelerationRate must be positive, got %g", ErrConfiguration, c.AccelerationRate)
	case !unit01(c.OverBrakeProbability):
		return fmt.Errorf("%w: OverBrakeProbability must be in [0,1], got %g", ErrConfiguration, c.OverBrakeProbability)
	case !unit01(c.OverBrakeFactor):
		return fmt.Errorf("%w: OverBrakeFactor must be in [0,1], got %g", ErrConfiguration, c.OverBrakeFactor)
	case !nonNegative(c.MaxWalkingDistance):
		return fmt.Errorf("%w: MaxWalkingDistance must be non-negative, got %g", ErrConfiguration, c.MaxWalkingDistance)
	case !nonNegative(c.TerminateTolerance):
		return fmt.Errorf("%w: TerminateTolerance must be non-negative, got %g", ErrConfiguration, c.TerminateTolerance)
	case c.VehicleCapacity < 1:
		return fmt.Errorf("%w: VehicleCapacity must be at least 1, got %d", ErrConfiguration, c.VehicleCapacity)
	case !positive(c.WalkingSpeedKmh):
		return fmt.Errorf("%w: WalkingSpeedKmh must be positive, got %g", ErrConfiguration, c.WalkingSpeedKmh)
	}

	return nil
}

// ticks converts a tick count to simulated time.
func (c Config) ticks(n float64) time.Duration {
	return time.Duration(n * float64(c.TickDuration))
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 1) }

func nonNegative(x float64) bool { return x >= 0 && !math.IsInf(x, 1) }

func unit01(x float64) bool { return x >= 0 && x <= 1 }
