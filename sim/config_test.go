package sim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacsim/sim"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, sim.DefaultConfig().Validate())
	require.NoError(t, scenarioConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*sim.Config)
	}{
		{"zero tick", func(c *sim.Config) { c.TickDuration = 0 }},
		{"zero acceleration", func(c *sim.Config) { c.AccelerationRate = 0 }},
		{"infinite acceleration", func(c *sim.Config) { c.AccelerationRate = math.Inf(1) }},
		{"probability above one", func(c *sim.Config) { c.OverBrakeProbability = 1.5 }},
		{"probability NaN", func(c *sim.Config) { c.OverBrakeProbability = math.NaN() }},
		{"negative brake factor", func(c *sim.Config) { c.OverBrakeFactor = -0.1 }},
		{"negative walking distance", func(c *sim.Config) { c.MaxWalkingDistance = -1 }},
		{"negative tolerance", func(c *sim.Config) { c.TerminateTolerance = -0.001 }},
		{"zero capacity", func(c *sim.Config) { c.VehicleCapacity = 0 }},
		{"zero walking speed", func(c *sim.Config) { c.WalkingSpeedKmh = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := sim.DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), sim.ErrConfiguration)
		})
	}
}

func TestConfigBoundariesAccepted(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.OverBrakeProbability = 1
	cfg.OverBrakeFactor = 0
	cfg.MaxWalkingDistance = 0
	cfg.TerminateTolerance = 0
	cfg.VehicleCapacity = 1
	require.NoError(t, cfg.Validate())
}
