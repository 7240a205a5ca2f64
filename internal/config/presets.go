package config

import "sort"

var Presets = map[string]*Config{
	"sol": {
		Name: "sol",
		Sun:  SunConfig{Name: "SOL", Mass: 5000, Radius: 10000000, Temperature: 5800},
		Planets: []PlanetConfig{
			{Name: "EARTH", Speed: 47.5, Mass: 1, Radius: 25, X: 5.0, Y: 200.0, Color: "green"},
			{Name: "MARS", Speed: 40.5, Mass: 0.1, Radius: 62, X: 10.0, Y: 125.0, Color: "red"},
		},
		Width: 500, Height: 500, Iterations: 2000,
	},
	"inner": {
		Name: "inner",
		Sun:  SunConfig{Name: "SOL", Mass: 5000, Radius: 10000000, Temperature: 5800},
		Planets: []PlanetConfig{
			{Name: "MERCURY", Speed: 58.0, Mass: 0.055, Radius: 10, X: 2.0, Y: 80.0, Color: "gray"},
			{Name: "VENUS", Speed: 50.2, Mass: 0.815, Radius: 23, X: 4.0, Y: 150.0, Color: "yellow"},
			{Name: "EARTH", Speed: 47.5, Mass: 1, Radius: 25, X: 5.0, Y: 200.0, Color: "green"},
			{Name: "MARS", Speed: 40.5, Mass: 0.1, Radius: 62, X: 10.0, Y: 125.0, Color: "red"},
		},
		Width: 500, Height: 500, Iterations: 2000,
	},
	"probe": {
		Name: "probe",
		Sun:  SunConfig{Name: "SOL", Mass: 5000, Radius: 10000000, Temperature: 5800},
		Planets: []PlanetConfig{
			{Name: "VOYAGER", Speed: 95.0, Mass: 0.001, Radius: 1, X: 1.0, Y: 50.0, Color: "silver"},
		},
		Width: 500, Height: 500, Iterations: 5000,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
