package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/solarsim/internal/analysis"
	"github.com/san-kum/solarsim/internal/automation"
	"github.com/san-kum/solarsim/internal/config"
	"github.com/san-kum/solarsim/internal/metrics"
	"github.com/san-kum/solarsim/internal/optim"
	"github.com/san-kum/solarsim/internal/sim"
	"github.com/san-kum/solarsim/internal/tui"
)

var (
	configFile string
	preset     string
	iterations int
	seed       int64
	format     string
	summary    bool
	// Live view pacing
	frameRate     int
	stepsPerFrame int
	// Scenario init
	force bool
	// Speed search bounds
	speedMin   float64
	speedMax   float64
	candidates int
)

// main wires up the solarsim CLI: scenario loading, the run/plot/live
// commands, and preset management. It exits with status 1 when a
// command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "solarsim",
		Short: "fixed-sun orbital simulator",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation and report every tick",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	runCmd.Flags().IntVar(&iterations, "iterations", 0, "tick count (0 keeps scenario value)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 keeps scenario value)")
	runCmd.Flags().StringVar(&format, "format", "text", "output format: text, csv or json")
	runCmd.Flags().BoolVar(&summary, "summary", false, "print run statistics to stderr")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "run the simulation and chart each planet's distance",
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	plotCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	plotCmd.Flags().IntVar(&iterations, "iterations", 0, "tick count (0 keeps scenario value)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the simulation in an interactive terminal view",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&stepsPerFrame, "steps", 25, "integration ticks per frame")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "estimate each planet's orbital period and radial spread",
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	analyzeCmd.Flags().IntVar(&iterations, "iterations", 0, "tick count (0 keeps scenario value)")

	tuneCmd := &cobra.Command{
		Use:   "tune [planet]",
		Short: "search initial speeds for the roundest orbit",
		Args:  cobra.ExactArgs(1),
		RunE:  tuneOrbit,
	}
	tuneCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	tuneCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	tuneCmd.Flags().IntVar(&iterations, "iterations", 0, "tick count (0 keeps scenario value)")
	tuneCmd.Flags().Float64Var(&speedMin, "min", 10.0, "lowest candidate speed")
	tuneCmd.Flags().Float64Var(&speedMax, "max", 100.0, "highest candidate speed")
	tuneCmd.Flags().IntVar(&candidates, "candidates", 19, "number of candidate speeds")

	batchCmd := &cobra.Command{
		Use:   "batch [script]",
		Short: "run a scripted sequence of scenarios",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scenario presets",
		RunE:  listScenarioPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initScenario,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(runCmd, plotCmd, liveCmd, analyzeCmd, tuneCmd, batchCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the scenario: preset first, then config file,
// then flag overrides, then validation.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if iterations > 0 {
		cfg.Iterations = iterations
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sys, err := cfg.BuildSystem()
	if err != nil {
		return err
	}

	s := sim.New(sys, cfg.SimConfig())
	switch format {
	case "text":
		s.AddReporter(sim.NewTextReporter(os.Stdout))
	case "csv":
		s.AddReporter(sim.NewCSVReporter(os.Stdout))
	case "json":
		s.AddReporter(sim.NewJSONReporter(os.Stdout))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	drift := metrics.NewEnergyDrift()
	drift.Observe(sys.Energy())
	start := time.Now()
	if err := s.Run(context.Background()); err != nil {
		return err
	}

	if summary {
		elapsed := time.Since(start)
		drift.Observe(sys.Energy())
		fmt.Fprintf(os.Stderr, "scenario: %s\n", cfg.Name)
		fmt.Fprintf(os.Stderr, "ticks: %d  planets: %d  elapsed: %s\n", cfg.Iterations, sys.Len(), elapsed)
		fmt.Fprintf(os.Stderr, "energy drift: %.3e\n", drift.Value())
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sys, err := cfg.BuildSystem()
	if err != nil {
		return err
	}

	collector := sim.NewHistoryReporter()
	s := sim.New(sys, cfg.SimConfig())
	s.AddReporter(collector)
	if err := s.Run(context.Background()); err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", cfg.Name)
	fmt.Printf("ticks: %d\n\n", cfg.Iterations)

	names := collector.Names()
	maxPlots := 6
	if len(names) > maxPlots {
		names = names[:maxPlots]
	}

	for _, name := range names {
		graph := asciigraph.Plot(collector.Distances(name),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" distance from "+cfg.Sun.Name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sys, err := cfg.BuildSystem()
	if err != nil {
		return err
	}

	m := tui.NewModel(cfg, sys, stepsPerFrame, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sys, err := cfg.BuildSystem()
	if err != nil {
		return err
	}

	collector := sim.NewHistoryReporter()
	s := sim.New(sys, cfg.SimConfig())
	s.AddReporter(collector)
	if err := s.Run(context.Background()); err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", cfg.Name)
	fmt.Printf("ticks: %d\n\n", cfg.Iterations)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLANET\tPERIOD\tMIN DIST\tMAX DIST\tSPREAD")

	for _, name := range collector.Names() {
		series := collector.Distances(name)

		rng := metrics.NewRadialRange()
		for _, d := range series {
			rng.Observe(d)
		}

		period := "-"
		if p, ok := analysis.DominantPeriod(series); ok {
			period = fmt.Sprintf("%.0f ticks", p)
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.4f\n", name, period, rng.Min(), rng.Max(), rng.Spread())
	}
	return w.Flush()
}

func tuneOrbit(cmd *cobra.Command, args []string) error {
	planet := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	idx := -1
	for i, p := range cfg.Planets {
		if p.Name == planet {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("no planet named %s in scenario %s", planet, cfg.Name)
	}

	evaluate := func(speed float64) (float64, error) {
		trial := *cfg
		trial.Planets = make([]config.PlanetConfig, len(cfg.Planets))
		copy(trial.Planets, cfg.Planets)
		trial.Planets[idx].Speed = speed

		sys, err := trial.BuildSystem()
		if err != nil {
			return 0, err
		}

		collector := sim.NewHistoryReporter()
		s := sim.New(sys, trial.SimConfig())
		s.AddReporter(collector)
		if err := s.Run(context.Background()); err != nil {
			return 0, err
		}

		rng := metrics.NewRadialRange()
		for _, d := range collector.Distances(planet) {
			rng.Observe(d)
		}
		return rng.Spread(), nil
	}

	g := optim.NewGridSearch(optim.Range(speedMin, speedMax, candidates))
	best, spread, err := g.Search(context.Background(), evaluate)
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s  planet: %s\n", cfg.Name, planet)
	fmt.Printf("candidates: %d in [%.2f, %.2f] over %d ticks each\n", candidates, speedMin, speedMax, cfg.Iterations)
	fmt.Printf("best speed: %.2f (radial spread %.4f)\n", best, spread)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	batch, err := automation.LoadBatch(args[0])
	if err != nil {
		return err
	}
	if batch.Description != "" {
		fmt.Println(batch.Description)
	}

	results, err := automation.RunBatch(context.Background(), batch)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tTICKS\tPLANETS\tENERGY DRIFT")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.3e\n", r.Scenario, r.Ticks, r.Planets, r.EnergyDrift)
	}
	return w.Flush()
}

func listScenarioPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSUN\tPLANETS\tITERATIONS")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		planets := make([]string, len(p.Planets))
		for i, pl := range p.Planets {
			planets[i] = pl.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", name, p.Sun.Name, strings.Join(planets, ","), p.Iterations)
	}
	return w.Flush()
}

func initScenario(cmd *cobra.Command, args []string) error {
	path := "solarsim.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
