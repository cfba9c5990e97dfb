package cannon

import (
	"fmt"
	"math"
)

// CombustionEfficiency is the fraction of the fuel's chemical energy that
// ends up as projectile kinetic energy. Combustion launchers are lossy;
// 15% is the accepted figure for a well-sealed chamber.
const CombustionEfficiency = 0.15

// Cannon describes the launcher geometry and charge.
type Cannon struct {
	BarrelLength    float64 // m
	BarrelDiameter  float64 // m
	ChamberLength   float64 // m
	ChamberDiameter float64 // m
	ProjectileMass  float64 // kg
	FuelType        string
	FuelVolumeML    float64 // milliliters
}

// Estimate is the outcome of a muzzle-velocity estimation.
type Estimate struct {
	MuzzleVelocity float64 // m/s
	BarrelVolume   float64 // m³
	ChamberVolume  float64 // m³
	KineticEnergy  float64 // J
	FuelKnown      bool    // false when the fuel fell back to the default density
}

// ChamberBarrelRatio returns chamber volume over barrel volume, the usual
// tuning metric for combustion launchers.
func (e Estimate) ChamberBarrelRatio() float64 {
	return e.ChamberVolume / e.BarrelVolume
}

// CylinderVolume returns the volume of a cylinder in m³.
func CylinderVolume(lengthM, diameterM float64) float64 {
	radius := diameterM / 2
	return math.Pi * radius * radius * lengthM
}

// BoreArea returns the projectile cross-sectional area in m², taken as the
// barrel bore.
func (c Cannon) BoreArea() float64 {
	radius := c.BarrelDiameter / 2
	return math.Pi * radius * radius
}

func (c Cannon) validate() error {
	if c.ProjectileMass <= 0 {
		return fmt.Errorf("projectile mass must be positive, got %f", c.ProjectileMass)
	}
	if c.BarrelLength <= 0 || c.BarrelDiameter <= 0 {
		return fmt.Errorf("barrel dimensions must be positive, got %fx%f", c.BarrelLength, c.BarrelDiameter)
	}
	if c.ChamberLength <= 0 || c.ChamberDiameter <= 0 {
		return fmt.Errorf("chamber dimensions must be positive, got %fx%f", c.ChamberLength, c.ChamberDiameter)
	}
	if c.FuelVolumeML < 0 {
		return fmt.Errorf("fuel volume must be non-negative, got %f", c.FuelVolumeML)
	}
	return nil
}

// EstimateMuzzleVelocity converts the fuel charge into projectile kinetic
// energy through the fixed combustion efficiency and derives the muzzle
// speed. Unknown fuel names use DefaultEnergyDensity and set FuelKnown
// false on the result.
func (c Cannon) EstimateMuzzleVelocity() (Estimate, error) {
	if err := c.validate(); err != nil {
		return Estimate{}, err
	}

	barrelVol := CylinderVolume(c.BarrelLength, c.BarrelDiameter)
	chamberVol := CylinderVolume(c.ChamberLength, c.ChamberDiameter)

	density, known := FuelEnergyDensity(c.FuelType)
	fuelM3 := c.FuelVolumeML / 1_000_000
	chemicalEnergy := fuelM3 * (density * 1_000_000)
	kineticEnergy := chemicalEnergy * CombustionEfficiency

	return Estimate{
		MuzzleVelocity: math.Sqrt(2 * kineticEnergy / c.ProjectileMass),
		BarrelVolume:   barrelVol,
		ChamberVolume:  chamberVol,
		KineticEnergy:  kineticEnergy,
		FuelKnown:      known,
	}, nil
}
