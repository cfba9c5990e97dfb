package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt        = 0.01
	DefaultMaxSteps  = 60000
	DefaultDragCoeff = 0.47 // sphere-like projectile
	DefaultAzimuth   = 90.0
)

// Config is the full description of a shot: the cannon, the site, and the
// integration settings.
type Config struct {
	Cannon CannonConfig `yaml:"cannon"`
	Site   SiteConfig   `yaml:"site"`
	Sim    SimConfig    `yaml:"sim"`
}

// CannonConfig mirrors a stored cannon profile.
type CannonConfig struct {
	Name            string  `yaml:"name"`
	BarrelLength    float64 `yaml:"barrel_len"`
	BarrelDiameter  float64 `yaml:"barrel_dia"`
	ChamberLength   float64 `yaml:"chamber_len"`
	ChamberDiameter float64 `yaml:"chamber_dia"`
	ProjectileMass  float64 `yaml:"proj_mass"`
	FuelType        string  `yaml:"fuel_type"`
	FuelVolumeML    float64 `yaml:"fuel_ml"`
	LaunchHeight    float64 `yaml:"launch_height"`
	DragCoeff       float64 `yaml:"cd"`
}

// SiteConfig holds launch-site conditions.
type SiteConfig struct {
	Altitude    float64 `yaml:"altitude"`
	Temperature float64 `yaml:"temp"`
	Latitude    float64 `yaml:"latitude"`
	Azimuth     float64 `yaml:"azimuth"`
	WindKMH     float64 `yaml:"wind_kmh"` // tailwind positive
}

// SimConfig holds integration settings.
type SimConfig struct {
	Dt                float64 `yaml:"dt"`
	MaxSteps          int     `yaml:"max_steps"`
	Integrator        string  `yaml:"integrator"`
	InterpolateImpact bool    `yaml:"interpolate_impact"`
}

func DefaultConfig() *Config {
	return &Config{
		Cannon: CannonConfig{
			BarrelLength:    1.0,
			BarrelDiameter:  0.05,
			ChamberLength:   0.3,
			ChamberDiameter: 0.08,
			ProjectileMass:  0.15,
			FuelType:        "propane",
			FuelVolumeML:    5.0,
			LaunchHeight:    1.0,
			DragCoeff:       DefaultDragCoeff,
		},
		Site: SiteConfig{
			Temperature: 20.0,
			Azimuth:     DefaultAzimuth,
		},
		Sim: SimConfig{
			Dt:         DefaultDt,
			MaxSteps:   DefaultMaxSteps,
			Integrator: "euler",
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
