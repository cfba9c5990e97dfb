package ballistics

import "math"

const (
	// Gravity is the standard gravitational acceleration in m/s².
	Gravity = 9.81

	// EarthRotationRate is Earth's sidereal rotation rate in rad/s.
	EarthRotationRate = 7.2921159e-5
)

// Dynamics evaluates the net acceleration on the projectile. Latitude and
// azimuth trigonometry is fixed per run and precomputed.
type Dynamics struct {
	proj           Projectile
	env            Environment
	sinLat, cosLat float64
	sinAz          float64
}

func newDynamics(proj Projectile, env Environment) *Dynamics {
	lat := env.LatitudeDeg * math.Pi / 180
	az := env.AzimuthDeg * math.Pi / 180
	return &Dynamics{
		proj:   proj,
		env:    env,
		sinLat: math.Sin(lat),
		cosLat: math.Cos(lat),
		sinAz:  math.Sin(az),
	}
}

// Acceleration returns the ENU acceleration components for the given
// velocity. The Coriolis terms fold the firing azimuth into the east and up
// components; this is the reference formulation this engine is compatible
// with, not the textbook ENU decomposition, and it is kept verbatim. At zero
// speed the drag contribution is zero.
func (d *Dynamics) Acceleration(vx, vy, vz float64) (ax, ay, az float64) {
	axCor := 2 * EarthRotationRate * (vy*d.sinLat - vz*d.cosLat*d.sinAz)
	ayCor := -2 * EarthRotationRate * (vx * d.sinLat)
	azCor := 2 * EarthRotationRate * (vx * d.cosLat * d.sinAz)

	v := math.Sqrt(vx*vx + vy*vy + vz*vz)
	if v == 0 {
		return axCor, ayCor, -Gravity + azCor
	}

	drag := 0.5 * d.env.AirDensity * d.proj.DragCoeff * d.proj.Area * v * v / d.proj.Mass

	ax = -(drag * vx / v) + axCor
	ay = -(drag * vy / v) + ayCor
	az = -Gravity - drag*vz/v + azCor
	return ax, ay, az
}
