package config

import "sort"

// Presets are illustrative halos for common galaxy types.
var Presets = map[string]*Config{
	"dwarf": {
		Halo: HaloConfig{TotalMass: 1e9, ScaleRadius: 5, Concentration: 15},
		Grid: GridConfig{RMin: 0.5, RMax: 30, Points: 50},
	},
	"milky_way": {
		Halo: HaloConfig{TotalMass: 1.5e12, ScaleRadius: 25, Concentration: 10},
		Grid: GridConfig{RMin: 1, RMax: 150, Points: 60},
	},
	"elliptical": {
		Halo: HaloConfig{TotalMass: 1e13, ScaleRadius: 50, Concentration: 8},
		Grid: GridConfig{RMin: 2, RMax: 300, Points: 60},
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Halo = p.Halo
	cfg.Grid = p.Grid
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
