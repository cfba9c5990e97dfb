package ballistics

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrNonTerminating reports that a trajectory exceeded the step bound
// without reaching the ground.
var ErrNonTerminating = errors.New("trajectory did not terminate")

// FlightError describes an integration fault at a specific step.
type FlightError struct {
	Step int
	Time float64
	Err  error
}

func (e *FlightError) Error() string {
	return fmt.Sprintf("flight aborted at step %d (t=%.2fs): %v", e.Step, e.Time, e.Err)
}

func (e *FlightError) Unwrap() error { return e.Err }

// Simulator runs independent shots for one projectile/environment pairing.
// It holds no mutable state across calls; every Fly owns its own State.
type Simulator struct {
	proj Projectile
	env  Environment
	dyn  *Dynamics
}

// New builds a Simulator. Parameter validation happens in Fly so that a
// zero-value Simulator fails loudly rather than silently.
func New(proj Projectile, env Environment) *Simulator {
	return &Simulator{proj: proj, env: env, dyn: newDynamics(proj, env)}
}

// launchState decomposes the launch angle and azimuth into the ENU velocity
// triple. Wind enters the east component only.
func (s *Simulator) launchState(angleDeg, muzzleSpeed float64) State {
	theta := angleDeg * math.Pi / 180
	azimuth := s.env.AzimuthDeg * math.Pi / 180

	return State{
		Z:  s.env.LaunchHeight,
		VX: muzzleSpeed*math.Cos(theta)*math.Cos(azimuth) + s.env.WindSpeed,
		VY: muzzleSpeed * math.Cos(theta) * math.Sin(azimuth),
		VZ: muzzleSpeed * math.Sin(theta),
	}
}

// Fly simulates a single shot and returns its outcome. The loop runs while
// z > 0 and reports the first sample at or below ground level; with
// Config.InterpolateImpact the final sample is refined linearly to z = 0.
// A shot whose initial state is already at ground level returns a
// zero-distance Flight without entering the loop.
func (s *Simulator) Fly(ctx context.Context, angleDeg, muzzleSpeed float64, cfg Config) (*Flight, error) {
	if err := s.proj.validate(); err != nil {
		return nil, err
	}
	if err := s.env.validate(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if angleDeg < -90 || angleDeg > 90 {
		return nil, fmt.Errorf("launch angle must be in [-90, 90], got %f", angleDeg)
	}
	if muzzleSpeed < 0 {
		return nil, fmt.Errorf("muzzle speed must be non-negative, got %f", muzzleSpeed)
	}

	integ, err := NewIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	st := s.launchState(angleDeg, muzzleSpeed)
	apex := st.Z
	steps := 0

	var path []State
	if cfg.RecordPath {
		path = append(path, st)
	}

	prev := st
	for st.Z > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if steps >= cfg.MaxSteps {
			return nil, &FlightError{Step: steps, Time: st.T, Err: ErrNonTerminating}
		}

		prev = st
		st = integ.Step(s.dyn, st, cfg.Dt)
		steps++

		if st.Z > apex {
			apex = st.Z
		}
		if cfg.RecordPath {
			path = append(path, st)
		}
	}

	if cfg.InterpolateImpact && steps > 0 && st.Z < 0 {
		st = interpolateImpact(prev, st)
		if cfg.RecordPath {
			path[len(path)-1] = st
		}
	}

	return &Flight{
		Range:       math.Sqrt(st.X*st.X + st.Y*st.Y),
		Time:        st.T,
		ImpactSpeed: st.Speed(),
		Drift:       st.Y,
		Apex:        apex,
		Steps:       steps,
		Path:        path,
	}, nil
}

// interpolateImpact moves the final sample back along the last step to the
// exact ground crossing, interpolating position, velocity, and time by the
// fraction of the step spent above ground.
func interpolateImpact(above, below State) State {
	frac := above.Z / (above.Z - below.Z)
	lerp := func(a, b float64) float64 { return a + frac*(b-a) }

	return State{
		X:  lerp(above.X, below.X),
		Y:  lerp(above.Y, below.Y),
		Z:  0,
		VX: lerp(above.VX, below.VX),
		VY: lerp(above.VY, below.VY),
		VZ: lerp(above.VZ, below.VZ),
		T:  lerp(above.T, below.T),
	}
}
