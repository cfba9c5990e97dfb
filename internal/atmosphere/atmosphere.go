package atmosphere

import "math"

// Constants for the international barometric formula and the ideal gas law.
const (
	SeaLevelPressure = 101325.0 // Pa
	GasConstDryAir   = 287.05   // J/(kg·K)

	pressureLapse    = 2.25577e-5
	pressureExponent = 5.25588
	kelvinOffset     = 273.15
)

// Density returns the air density in kg/m³ at the given altitude and
// temperature, using the barometric pressure profile and the ideal gas
// relation. Inputs are not range-checked; an altitude beyond the validity of
// the barometric formula yields a mathematically defined but physically
// meaningless value.
func Density(altitudeM, temperatureC float64) float64 {
	t := temperatureC + kelvinOffset
	p := SeaLevelPressure * math.Pow(1-pressureLapse*altitudeM, pressureExponent)
	return p / (GasConstDryAir * t)
}
