package cannon

import (
	"sort"
	"strings"
)

// DefaultEnergyDensity is used for fuel names not present in the table, in
// MJ/m³. Unknown fuels are a fallback, not an error; callers can detect the
// substitution through Estimate.FuelKnown.
const DefaultEnergyDensity = 90.0

// Volumetric energy densities in MJ/m³ for the fuels commonly used in
// combustion launchers. Lookup is case-insensitive.
var fuelEnergyDensities = map[string]float64{
	"butane":    111.0,
	"propane":   94.0,
	"hairspray": 60.0,
}

// FuelEnergyDensity returns the volumetric energy density in MJ/m³ for the
// named fuel. Unrecognized names return DefaultEnergyDensity and known=false.
func FuelEnergyDensity(name string) (density float64, known bool) {
	d, ok := fuelEnergyDensities[strings.ToLower(name)]
	if !ok {
		return DefaultEnergyDensity, false
	}
	return d, true
}

// Fuels returns the known fuel names, sorted.
func Fuels() []string {
	names := make([]string, 0, len(fuelEnergyDensities))
	for name := range fuelEnergyDensities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
