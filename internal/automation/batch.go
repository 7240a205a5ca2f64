package automation

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/solarsim/internal/config"
	"github.com/san-kum/solarsim/internal/metrics"
	"github.com/san-kum/solarsim/internal/sim"
	"github.com/san-kum/solarsim/internal/solar"
)

// Batch is a scripted sequence of simulation runs.
type Batch struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Steps       []BatchStep `yaml:"steps"`
}

// BatchStep selects one scenario, by preset name or by file path, with
// an optional tick override. A config path wins over a preset name.
type BatchStep struct {
	Preset     string `yaml:"preset"`
	Config     string `yaml:"config"`
	Iterations int    `yaml:"iterations"`
}

// StepResult summarizes one completed run.
type StepResult struct {
	Scenario    string
	Ticks       int
	Planets     int
	EnergyDrift float64
}

func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var batch Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// resolve builds the step's scenario. Presets are copied so a tick
// override on one step does not leak into later steps.
func (s BatchStep) resolve() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case s.Config != "":
		loaded, err := config.Load(s.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case s.Preset != "":
		p := config.GetPreset(s.Preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
		c := *p
		cfg = &c
	default:
		return nil, fmt.Errorf("step needs a preset or a config path")
	}

	if s.Iterations > 0 {
		cfg.Iterations = s.Iterations
	}
	return cfg, cfg.Validate()
}

// energyProbe samples total energy after every tick so drift reflects
// the whole run, not just its endpoints.
type energyProbe struct {
	sys   *solar.System
	drift *metrics.EnergyDrift
}

func (p *energyProbe) Report(tick int, states []sim.PlanetState) {
	p.drift.Observe(p.sys.Energy())
}

func (p *energyProbe) Flush() error { return nil }

// RunBatch executes every step in order and stops at the first
// failure, returning the results completed so far.
func RunBatch(ctx context.Context, batch *Batch) ([]StepResult, error) {
	results := make([]StepResult, 0, len(batch.Steps))

	for i, step := range batch.Steps {
		cfg, err := step.resolve()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		fmt.Printf("running step %d/%d: %s\n", i+1, len(batch.Steps), cfg.Name)

		sys, err := cfg.BuildSystem()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		drift := metrics.NewEnergyDrift()
		drift.Observe(sys.Energy())

		s := sim.New(sys, cfg.SimConfig())
		s.AddReporter(&energyProbe{sys: sys, drift: drift})
		if err := s.Run(ctx); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		results = append(results, StepResult{
			Scenario:    cfg.Name,
			Ticks:       cfg.Iterations,
			Planets:     sys.Len(),
			EnergyDrift: drift.Value(),
		})
	}
	return results, nil
}
