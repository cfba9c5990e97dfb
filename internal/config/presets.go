package config

import "sort"

// Presets are ready-made shot configurations, keyed by name.
var Presets = map[string]*Config{
	"backyard": {
		Cannon: CannonConfig{
			BarrelLength: 1.0, BarrelDiameter: 0.05,
			ChamberLength: 0.3, ChamberDiameter: 0.08,
			ProjectileMass: 0.15, FuelType: "propane", FuelVolumeML: 5.0,
			LaunchHeight: 1.0, DragCoeff: DefaultDragCoeff,
		},
		Site: SiteConfig{Temperature: 20.0, Azimuth: DefaultAzimuth},
		Sim:  SimConfig{Dt: DefaultDt, MaxSteps: DefaultMaxSteps, Integrator: "euler"},
	},
	"county-fair": {
		Cannon: CannonConfig{
			BarrelLength: 1.8, BarrelDiameter: 0.075,
			ChamberLength: 0.5, ChamberDiameter: 0.11,
			ProjectileMass: 0.3, FuelType: "butane", FuelVolumeML: 12.0,
			LaunchHeight: 1.5, DragCoeff: DefaultDragCoeff,
		},
		Site: SiteConfig{Temperature: 25.0, Azimuth: DefaultAzimuth},
		Sim:  SimConfig{Dt: DefaultDt, MaxSteps: DefaultMaxSteps, Integrator: "euler"},
	},
	"polar": {
		Cannon: CannonConfig{
			BarrelLength: 1.2, BarrelDiameter: 0.06,
			ChamberLength: 0.35, ChamberDiameter: 0.09,
			ProjectileMass: 0.2, FuelType: "hairspray", FuelVolumeML: 8.0,
			LaunchHeight: 1.0, DragCoeff: DefaultDragCoeff,
		},
		Site: SiteConfig{Altitude: 200.0, Temperature: -15.0, Latitude: 78.0, Azimuth: 0.0},
		Sim:  SimConfig{Dt: DefaultDt, MaxSteps: DefaultMaxSteps, Integrator: "euler"},
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
