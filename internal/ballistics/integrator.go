package ballistics

import "fmt"

// Integrator advances a state by one fixed time step.
type Integrator interface {
	Step(d *Dynamics, s State, dt float64) State
}

// NewIntegrator returns the named integrator.
func NewIntegrator(name string) (Integrator, error) {
	switch name {
	case "", "euler":
		return &Euler{}, nil
	case "rk4":
		return &RK4{}, nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

// Euler is the default scheme: velocity advances on the current
// acceleration, position advances on the updated velocity (semi-implicit
// ordering).
type Euler struct{}

func (e *Euler) Step(d *Dynamics, s State, dt float64) State {
	ax, ay, az := d.Acceleration(s.VX, s.VY, s.VZ)

	s.VX += ax * dt
	s.VY += ay * dt
	s.VZ += az * dt

	s.X += s.VX * dt
	s.Y += s.VY * dt
	s.Z += s.VZ * dt
	s.T += dt
	return s
}

// RK4 is classic fourth-order Runge-Kutta over the full kinematic state.
// More accurate per step than Euler but not the compatibility default.
type RK4 struct{}

type deriv struct {
	dx, dy, dz    float64
	dvx, dvy, dvz float64
}

func (r *RK4) eval(d *Dynamics, s State, dt float64, k deriv) deriv {
	vx := s.VX + k.dvx*dt
	vy := s.VY + k.dvy*dt
	vz := s.VZ + k.dvz*dt
	ax, ay, az := d.Acceleration(vx, vy, vz)
	return deriv{dx: vx, dy: vy, dz: vz, dvx: ax, dvy: ay, dvz: az}
}

func (r *RK4) Step(d *Dynamics, s State, dt float64) State {
	k1 := r.eval(d, s, 0, deriv{})
	k2 := r.eval(d, s, dt/2, k1)
	k3 := r.eval(d, s, dt/2, k2)
	k4 := r.eval(d, s, dt, k3)

	s.X += dt / 6 * (k1.dx + 2*k2.dx + 2*k3.dx + k4.dx)
	s.Y += dt / 6 * (k1.dy + 2*k2.dy + 2*k3.dy + k4.dy)
	s.Z += dt / 6 * (k1.dz + 2*k2.dz + 2*k3.dz + k4.dz)
	s.VX += dt / 6 * (k1.dvx + 2*k2.dvx + 2*k3.dvx + k4.dvx)
	s.VY += dt / 6 * (k1.dvy + 2*k2.dvy + 2*k3.dvy + k4.dvy)
	s.VZ += dt / 6 * (k1.dvz + 2*k2.dvz + 2*k3.dvz + k4.dvz)
	s.T += dt
	return s
}
