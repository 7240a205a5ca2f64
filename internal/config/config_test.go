package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/solarsim/internal/solar"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sun.Name != "SOL" {
		t.Errorf("expected sun SOL, got %s", cfg.Sun.Name)
	}
	if cfg.Sun.Mass != 5000 {
		t.Errorf("expected sun mass 5000, got %g", cfg.Sun.Mass)
	}
	if len(cfg.Planets) != 2 {
		t.Fatalf("expected 2 planets, got %d", len(cfg.Planets))
	}
	if cfg.Planets[0].Name != "EARTH" || cfg.Planets[1].Name != "MARS" {
		t.Errorf("unexpected planets: %s, %s", cfg.Planets[0].Name, cfg.Planets[1].Name)
	}
	if cfg.Iterations != DefaultIterations {
		t.Errorf("expected %d iterations, got %d", DefaultIterations, cfg.Iterations)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("expected %dx%d viewport, got %dx%d", DefaultWidth, DefaultHeight, cfg.Width, cfg.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := DefaultConfig()
	cfg.Name = "custom"
	cfg.Iterations = 42
	cfg.Planets = append(cfg.Planets, PlanetConfig{
		Name: "CERES", Speed: 30.0, Mass: 0.01, Radius: 5, X: 15.0, Y: 90.0, Color: "white",
	})

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Name != "custom" {
		t.Errorf("expected name custom, got %s", loaded.Name)
	}
	if loaded.Iterations != 42 {
		t.Errorf("expected 42 iterations, got %d", loaded.Iterations)
	}
	if len(loaded.Planets) != 3 {
		t.Fatalf("expected 3 planets, got %d", len(loaded.Planets))
	}
	if loaded.Planets[2].Name != "CERES" || loaded.Planets[2].Speed != 30.0 {
		t.Errorf("unexpected third planet: %+v", loaded.Planets[2])
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := "name: quick\niterations: 10\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Name != "quick" {
		t.Errorf("expected name quick, got %s", cfg.Name)
	}
	if cfg.Iterations != 10 {
		t.Errorf("expected 10 iterations, got %d", cfg.Iterations)
	}
	if cfg.Sun.Name != "SOL" || cfg.Sun.Mass != 5000 {
		t.Errorf("expected default sun, got %+v", cfg.Sun)
	}
	if len(cfg.Planets) != 2 {
		t.Errorf("expected default planets, got %d", len(cfg.Planets))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }, true},
		{"negative iterations", func(c *Config) { c.Iterations = -1 }, true},
		{"unnamed sun", func(c *Config) { c.Sun.Name = "" }, true},
		{"unnamed planet", func(c *Config) { c.Planets[0].Name = "" }, true},
		{"no planets", func(c *Config) { c.Planets = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestBuildSystem(t *testing.T) {
	sys, err := DefaultConfig().BuildSystem()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if sys.PrimaryBody() == nil || sys.PrimaryBody().Name() != "SOL" {
		t.Fatal("expected SOL as primary body")
	}
	if sys.Len() != 2 {
		t.Fatalf("expected 2 orbiting bodies, got %d", sys.Len())
	}
	earth := sys.OrbitingBodies()[0]
	if pos := earth.Position(); pos.X != 5.0 || pos.Y != 200.0 {
		t.Errorf("expected EARTH at (5, 200), got (%g, %g)", pos.X, pos.Y)
	}
	if vel := earth.Velocity(); vel.X != 0 || vel.Y != 47.5 {
		t.Errorf("expected EARTH velocity (0, 47.5), got (%g, %g)", vel.X, vel.Y)
	}
}

func TestBuildSystemRejectsBadMass(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Planets[0].Mass = 0

	_, err := cfg.BuildSystem()
	if !errors.Is(err, solar.ErrNonPositiveMass) {
		t.Fatalf("expected ErrNonPositiveMass, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("inner")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Planets) != 4 {
		t.Errorf("expected 4 planets, got %d", len(cfg.Planets))
	}
	if cfg.Planets[0].Name != "MERCURY" {
		t.Errorf("expected MERCURY first, got %s", cfg.Planets[0].Name)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(names))
	}
	if names[0] != "inner" || names[1] != "probe" || names[2] != "sol" {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		if _, err := cfg.BuildSystem(); err != nil {
			t.Errorf("preset %s: build: %v", name, err)
		}
	}
}

func TestSimConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99

	sc := cfg.SimConfig()
	if sc.Width != cfg.Width || sc.Height != cfg.Height {
		t.Errorf("viewport not carried over: %dx%d", sc.Width, sc.Height)
	}
	if sc.Iterations != cfg.Iterations {
		t.Errorf("expected %d iterations, got %d", cfg.Iterations, sc.Iterations)
	}
	if sc.Seed != 99 {
		t.Errorf("expected seed 99, got %d", sc.Seed)
	}
}
