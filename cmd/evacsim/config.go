package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/evacsim/sim"
)

// Config is everything the driver reads from the environment.
type Config struct {
	Sim      sim.Config
	Seed     int64
	Runs     int
	MaxTicks int
	LogLevel logrus.Level
}

func loadConfig() (*Config, error) {
	cfg := &Config{Sim: sim.DefaultConfig()}
	var err error

	if cfg.Sim.TickDuration, err = time.ParseDuration(getEnv("EVACSIM_TICK", "1s")); err != nil {
		return nil, fmt.Errorf("EVACSIM_TICK: %w", err)
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"EVACSIM_ACCEL", &cfg.Sim.AccelerationRate},
		{"EVACSIM_BRAKE_P", &cfg.Sim.OverBrakeProbability},
		{"EVACSIM_BRAKE_FACTOR", &cfg.Sim.OverBrakeFactor},
		{"EVACSIM_MAX_WALK_KM", &cfg.Sim.MaxWalkingDistance},
	}
	for _, f := range floats {
		if v := os.Getenv(f.key); v != "" {
			if *f.dst, err = strconv.ParseFloat(v, 64); err != nil {
				return nil, fmt.Errorf("%s: %w", f.key, err)
			}
		}
	}
	if cfg.Sim.VehicleCapacity, err = strconv.Atoi(getEnv("EVACSIM_CAPACITY", strconv.Itoa(cfg.Sim.VehicleCapacity))); err != nil {
		return nil, fmt.Errorf("EVACSIM_CAPACITY: %w", err)
	}
	if cfg.Seed, err = strconv.ParseInt(getEnv("EVACSIM_SEED", "1"), 10, 64); err != nil {
		return nil, fmt.Errorf("EVACSIM_SEED: %w", err)
	}
	if cfg.Runs, err = strconv.Atoi(getEnv("EVACSIM_RUNS", "1")); err != nil || cfg.Runs < 1 {
		return nil, fmt.Errorf("EVACSIM_RUNS: want a positive integer, got %q", os.Getenv("EVACSIM_RUNS"))
	}
	if cfg.MaxTicks, err = strconv.Atoi(getEnv("EVACSIM_MAX_TICKS", "7200")); err != nil {
		return nil, fmt.Errorf("EVACSIM_MAX_TICKS: %w", err)
	}
	if cfg.LogLevel, err = logrus.ParseLevel(getEnv("EVACSIM_LOG_LEVEL", "info")); err != nil {
		return nil, fmt.Errorf("EVACSIM_LOG_LEVEL: %w", err)
	}

	return cfg, cfg.Sim.Validate()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
