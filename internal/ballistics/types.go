package ballistics

import (
	"fmt"
	"math"
)

const (
	// DefaultDt is the integration time step in seconds.
	DefaultDt = 0.01

	// DefaultMaxSteps bounds the integration loop; at DefaultDt it allows
	// ten minutes of simulated flight, far past any reachable trajectory.
	DefaultMaxSteps = 60000
)

// Projectile holds the properties of the launched body. Immutable during a
// run.
type Projectile struct {
	Mass      float64 // kg
	DragCoeff float64 // dimensionless; zero disables drag
	Area      float64 // cross-sectional area, m²
}

// Environment holds the launch-site conditions. Immutable during a run.
type Environment struct {
	AirDensity   float64 // kg/m³
	LaunchHeight float64 // m above ground
	WindSpeed    float64 // m/s, tailwind positive, applied to the east component
	LatitudeDeg  float64 // [-90, 90]
	AzimuthDeg   float64 // compass bearing of fire, [0, 360)
}

// State is the projectile's kinematic state in the ENU frame: position in
// meters (X east, Y north, Z up), velocity in m/s, elapsed time in seconds.
type State struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	T          float64
}

// Speed returns the Euclidean norm of the velocity.
func (s State) Speed() float64 {
	return math.Sqrt(s.VX*s.VX + s.VY*s.VY + s.VZ*s.VZ)
}

// Flight is the outcome of a single simulated shot.
type Flight struct {
	Range       float64 // planar distance from origin at impact, m
	Time        float64 // time of flight, s
	ImpactSpeed float64 // m/s
	Drift       float64 // north component of the landing position, m
	Apex        float64 // peak altitude reached, m
	Steps       int
	Path        []State // populated only when Config.RecordPath
}

// Config controls the integration loop.
type Config struct {
	Dt                float64
	MaxSteps          int
	Integrator        string // "euler" (default) or "rk4"
	InterpolateImpact bool   // refine the impact sample to z = 0
	RecordPath        bool
}

// DefaultConfig returns the documented fixed-step Euler configuration.
func DefaultConfig() Config {
	return Config{
		Dt:         DefaultDt,
		MaxSteps:   DefaultMaxSteps,
		Integrator: "euler",
	}
}

func (p Projectile) validate() error {
	if p.Mass <= 0 {
		return fmt.Errorf("projectile mass must be positive, got %f", p.Mass)
	}
	if p.DragCoeff < 0 {
		return fmt.Errorf("drag coefficient must be non-negative, got %f", p.DragCoeff)
	}
	if p.Area < 0 {
		return fmt.Errorf("area must be non-negative, got %f", p.Area)
	}
	return nil
}

func (e Environment) validate() error {
	if e.AirDensity <= 0 {
		return fmt.Errorf("air density must be positive, got %f", e.AirDensity)
	}
	if e.LaunchHeight < 0 {
		return fmt.Errorf("launch height must be non-negative, got %f", e.LaunchHeight)
	}
	if e.LatitudeDeg < -90 || e.LatitudeDeg > 90 {
		return fmt.Errorf("latitude must be in [-90, 90], got %f", e.LatitudeDeg)
	}
	if e.AzimuthDeg < 0 || e.AzimuthDeg >= 360 {
		return fmt.Errorf("azimuth must be in [0, 360), got %f", e.AzimuthDeg)
	}
	return nil
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps must be positive, got %d", c.MaxSteps)
	}
	return nil
}
