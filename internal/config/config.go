package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/solarsim/internal/sim"
	"github.com/san-kum/solarsim/internal/solar"
)

const (
	DefaultWidth      = 500
	DefaultHeight     = 500
	DefaultIterations = 2000
)

type Config struct {
	Name       string         `yaml:"name"`
	Sun        SunConfig      `yaml:"sun"`
	Planets    []PlanetConfig `yaml:"planets"`
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	Iterations int            `yaml:"iterations"`
	Seed       int64          `yaml:"seed"`
}

type SunConfig struct {
	Name        string  `yaml:"name"`
	Mass        float64 `yaml:"mass"`
	Radius      float64 `yaml:"radius"`
	Temperature float64 `yaml:"temperature"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
}

type PlanetConfig struct {
	Name   string  `yaml:"name"`
	Speed  float64 `yaml:"speed"`
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Color  string  `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Name: "sol",
		Sun: SunConfig{
			Name:        "SOL",
			Mass:        5000,
			Radius:      10000000,
			Temperature: 5800,
		},
		Planets: []PlanetConfig{
			{Name: "EARTH", Speed: 47.5, Mass: 1, Radius: 25, X: 5.0, Y: 200.0, Color: "green"},
			{Name: "MARS", Speed: 40.5, Mass: 0.1, Radius: 62, X: 10.0, Y: 125.0, Color: "red"},
		},
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Iterations: DefaultIterations,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Sun.Name == "" {
		return fmt.Errorf("sun must have a name")
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	for i, p := range c.Planets {
		if p.Name == "" {
			return fmt.Errorf("planet %d must have a name", i)
		}
	}
	return nil
}

// BuildSystem constructs the system the config describes. Mass checks
// happen in the body constructors, so a config with a non-positive mass
// fails here rather than in Validate.
func (c *Config) BuildSystem() (*solar.System, error) {
	sun, err := solar.NewBody(c.Sun.Name, c.Sun.Mass, c.Sun.Radius, c.Sun.Temperature)
	if err != nil {
		return nil, err
	}
	sun.SetPosition(c.Sun.X, c.Sun.Y)

	sys := solar.NewSystem()
	sys.SetPrimaryBody(sun)
	for _, p := range c.Planets {
		planet, err := solar.NewOrbitingBody(p.Name, p.Speed, p.Mass, p.Radius, p.X, p.Y, p.Color)
		if err != nil {
			return nil, err
		}
		sys.AddOrbitingBody(planet)
	}
	return sys, nil
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Width:      c.Width,
		Height:     c.Height,
		Iterations: c.Iterations,
		Seed:       c.Seed,
	}
}
