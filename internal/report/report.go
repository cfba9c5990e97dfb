// Package report renders simulation output for the terminal: the firing
// table, the range-vs-angle curve, and CSV export.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/spudsim/internal/ballistics"
	"github.com/san-kum/spudsim/internal/cannon"
)

// WriteSummary prints the muzzle estimate and site conditions block shown
// before a table or plot.
func WriteSummary(w io.Writer, est cannon.Estimate, airDensity float64) {
	fmt.Fprintf(w, "estimated muzzle velocity: %.2f m/s\n", est.MuzzleVelocity)
	fmt.Fprintf(w, "air density: %.3f kg/m³\n", airDensity)
	fmt.Fprintf(w, "barrel volume: %.2f L\n", est.BarrelVolume*1000)
	fmt.Fprintf(w, "chamber volume: %.2f L\n", est.ChamberVolume*1000)
	fmt.Fprintf(w, "chamber-to-barrel ratio: %.2f:1\n", est.ChamberBarrelRatio())
	if !est.FuelKnown {
		fmt.Fprintf(w, "note: unknown fuel, using default energy density (%.0f MJ/m³)\n", cannon.DefaultEnergyDensity)
	}
}

// WriteFiringTable prints one row per swept angle.
func WriteFiringTable(w io.Writer, shots []ballistics.Shot) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ANGLE\tRANGE\tTIME\tIMPACT\tDRIFT")

	for _, shot := range shots {
		fmt.Fprintf(tw, "%.0f°\t%.1fm\t%.2fs\t%.2fm/s\t%.2fm\n",
			shot.Angle,
			shot.Flight.Range,
			shot.Flight.Time,
			shot.Flight.ImpactSpeed,
			shot.Flight.Drift,
		)
	}

	return tw.Flush()
}

// RangeCurve renders the range-vs-angle series as a terminal plot.
func RangeCurve(shots []ballistics.Shot, width, height int) string {
	ranges := make([]float64, len(shots))
	for i, shot := range shots {
		ranges[i] = shot.Flight.Range
	}

	caption := "range (m) vs launch angle"
	if len(shots) > 0 {
		caption = fmt.Sprintf("range (m) vs launch angle (%.0f°–%.0f°)",
			shots[0].Angle, shots[len(shots)-1].Angle)
	}

	return asciigraph.Plot(ranges,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// WriteCSV exports a sweep, one row per angle.
func WriteCSV(w io.Writer, shots []ballistics.Shot) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"angle_deg", "range_m", "time_s", "impact_mps", "drift_m"}); err != nil {
		return err
	}

	for _, shot := range shots {
		row := []string{
			strconv.FormatFloat(shot.Angle, 'f', 2, 64),
			strconv.FormatFloat(shot.Flight.Range, 'f', 6, 64),
			strconv.FormatFloat(shot.Flight.Time, 'f', 6, 64),
			strconv.FormatFloat(shot.Flight.ImpactSpeed, 'f', 6, 64),
			strconv.FormatFloat(shot.Flight.Drift, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
