// Command evacsim runs a toy evacuation of a small market town toward the
// school on the hill and reports the journey statistics of each run.
//
// Settings come from the environment (optionally a .env file):
//
//	EVACSIM_TICK          tick duration, e.g. 1s (default 1s)
//	EVACSIM_ACCEL         acceleration in km per tick
//	EVACSIM_BRAKE_P       over-braking probability per speed update
//	EVACSIM_BRAKE_FACTOR  fraction of speed lost when over-braking
//	EVACSIM_MAX_WALK_KM   longest route evacuees walk instead of drive
//	EVACSIM_CAPACITY      seats per car
//	EVACSIM_SEED          base seed; run i uses sim.StreamSeed(seed, i)
//	EVACSIM_RUNS          independent replicates, run in parallel
//	EVACSIM_MAX_TICKS     safety limit per run
//	EVACSIM_LOG_LEVEL     logrus level (debug logs every spawn and arrival)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/evacsim/sim"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment")
	}
	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	log.SetLevel(cfg.LogLevel)

	town, err := buildTown(cfg.Sim.TickDuration)
	if err != nil {
		log.WithError(err).Fatal("Failed to build road network")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summaries := make([]sim.Summary, cfg.Runs)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Runs; i++ {
		i := i // per-iteration copy; go 1.21 toolchain predates 1.22 loopvar semantics
		g.Go(func() error {
			s, err := sim.New(town.Clone(), cfg.Sim,
				sim.WithSeed(sim.StreamSeed(cfg.Seed, uint64(i))),
				sim.WithLogger(log))
			if err != nil {
				return err
			}
			if err := run(ctx, s, schedule, cfg.MaxTicks); err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			summaries[i] = s.Summary()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("Simulation failed")
	}

	for i, sum := range summaries {
		log.WithFields(logrus.Fields{
			"run":         i,
			"run_id":      sum.RunID,
			"ticks":       sum.Tick,
			"sim_time":    sum.SimulatedTime,
			"evacuated":   sum.TotalEvacuated,
			"stranded":    sum.TotalEvacuating,
			"journeys":    sum.Journeys,
			"mean_ideal":  sum.MeanIdeal,
			"mean_actual": sum.MeanActual,
			"mean_delay":  sum.MeanDelay,
		}).Info("Run complete")
	}
}

// run applies events and advances ticks until every unit has arrived,
// maxTicks is reached or ctx is cancelled. events must be sorted by tick.
func run(ctx context.Context, s *sim.Simulator, events []spawn, maxTicks int) error {
	g := s.Graph()
	next := 0
	spawnDue := func(tick int) error {
		for next < len(events) && events[next].tick <= tick {
			ev := events[next]
			start, ok := g.Node(ev.node)
			if !ok {
				return fmt.Errorf("spawn at tick %d: unknown node %q", ev.tick, ev.node)
			}
			if _, err := s.Spawn(start, ev.evacuees); err != nil {
				return err
			}
			next++
		}
		return nil
	}

	if err := spawnDue(0); err != nil {
		return err
	}
	for tick := 1; tick <= maxTicks; tick++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.AdvanceTick(tick); err != nil {
			return err
		}
		if err := spawnDue(tick); err != nil {
			return err
		}
		if s.Drained() && next == len(events) {
			return nil
		}
	}
	return nil
}

// spawn is evacuees appearing at a node at a tick.
type spawn struct {
	tick     int
	node     string
	evacuees int
}

var schedule = []spawn{
	{0, "riverside", 40},
	{0, "mill", 12},
	{0, "chapel", 6},
	{30, "market", 55},
	{60, "farm", 9},
	{90, "riverside", 25},
	{120, "quarry", 14},
	{300, "market", 20},
}
