// Package ballistics integrates projectile flight in a local East-North-Up
// frame under gravity, quadratic aerodynamic drag, and Earth-rotation
// (Coriolis) acceleration.
//
// A [Simulator] binds a [Projectile] to an [Environment] and advances a
// [State] with a fixed-step [Integrator] until ground impact:
//
//	sim := ballistics.New(proj, env)
//	flight, err := sim.Fly(ctx, 45, muzzleSpeed, ballistics.DefaultConfig())
//
// The default integrator is semi-implicit Euler at dt = 0.01 s, terminating
// on the first sample at or below ground level; RK4 and linear impact
// interpolation are available through [Config]. Every run is deterministic:
// identical inputs produce identical flights.
package ballistics
