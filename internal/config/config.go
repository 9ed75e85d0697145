package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTotalMass     = 1e12
	DefaultScaleRadius   = 20.0
	DefaultConcentration = 10.0
	DefaultRMin          = 1.0
	DefaultRMax          = 100.0
	DefaultPoints        = 50
	DefaultParticleMass  = 100.0
)

type Config struct {
	Halo     HaloConfig     `yaml:"halo"`
	Grid     GridConfig     `yaml:"grid"`
	Particle ParticleConfig `yaml:"particle"`
}

type HaloConfig struct {
	TotalMass     float64 `yaml:"total_mass"`
	ScaleRadius   float64 `yaml:"scale_radius"`
	Concentration float64 `yaml:"concentration"`
}

type GridConfig struct {
	RMin   float64 `yaml:"r_min"`
	RMax   float64 `yaml:"r_max"`
	Points int     `yaml:"points"`
	Log    bool    `yaml:"log"`
}

type ParticleConfig struct {
	Mass     float64   `yaml:"mass"`
	Position []float64 `yaml:"position"`
	Velocity []float64 `yaml:"velocity"`
}

func DefaultConfig() *Config {
	return &Config{
		Halo: HaloConfig{
			TotalMass:     DefaultTotalMass,
			ScaleRadius:   DefaultScaleRadius,
			Concentration: DefaultConcentration,
		},
		Grid: GridConfig{
			RMin:   DefaultRMin,
			RMax:   DefaultRMax,
			Points: DefaultPoints,
		},
		Particle: ParticleConfig{
			Mass:     DefaultParticleMass,
			Position: []float64{0, 0, 0},
			Velocity: []float64{0, 0, 0},
		},
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
