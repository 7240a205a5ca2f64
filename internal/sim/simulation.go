package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/solarsim/internal/solar"
)

// Config carries the driver's run parameters. Width and Height are
// spatial bounds held for future bounding work; physics does not enforce
// them. Seed feeds the reserved random source, which nothing on the
// integration path draws from.
type Config struct {
	Width      int
	Height     int
	Iterations int
	Seed       int64
}

// Simulation drives a System through a fixed number of ticks, fanning
// each tick's state out to the attached reporters.
type Simulation struct {
	system    *solar.System
	cfg       Config
	reporters []Reporter
	rng       *rand.Rand
}

func New(system *solar.System, cfg Config) *Simulation {
	return &Simulation{
		system:    system,
		cfg:       cfg,
		reporters: make([]Reporter, 0),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (s *Simulation) AddReporter(r Reporter) { s.reporters = append(s.reporters, r) }

// Run advances the system once per tick and reports every orbiting body
// in collection order after each advance. The loop is fully synchronous;
// ctx is only consulted between ticks. Any advance failure aborts the
// run immediately, with no retry and no tick skipping. Reporters are
// flushed once all ticks complete.
func (s *Simulation) Run(ctx context.Context) error {
	if err := s.validateConfig(); err != nil {
		return err
	}

	for tick := 1; tick <= s.cfg.Iterations; tick++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.system.Advance(); err != nil {
			return fmt.Errorf("tick %d: %w", tick, err)
		}

		states := Snapshot(s.system)
		for _, r := range s.reporters {
			r.Report(tick, states)
		}
	}

	for _, r := range s.reporters {
		if err := r.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulation) validateConfig() error {
	if s.system == nil {
		return fmt.Errorf("system must not be nil")
	}
	if s.cfg.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", s.cfg.Iterations)
	}
	return nil
}

// Snapshot captures the reportable state of every orbiting body in
// collection order.
func Snapshot(sys *solar.System) []PlanetState {
	primary := sys.PrimaryBody()
	bodies := sys.OrbitingBodies()

	states := make([]PlanetState, len(bodies))
	for i, o := range bodies {
		pos := o.Position()
		states[i] = PlanetState{
			Name:     o.Name(),
			X:        pos.X,
			Y:        pos.Y,
			Distance: o.DistanceFromBody(primary),
		}
	}
	return states
}
