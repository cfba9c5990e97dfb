package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/spudsim/internal/atmosphere"
	"github.com/san-kum/spudsim/internal/ballistics"
	"github.com/san-kum/spudsim/internal/cannon"
	"github.com/san-kum/spudsim/internal/config"
	"github.com/san-kum/spudsim/internal/profile"
	"github.com/san-kum/spudsim/internal/report"
	"github.com/san-kum/spudsim/internal/tui"
)

var (
	profilesPath string
	configFile   string
	presetName   string
	profileName  string

	angle      float64
	windKMH    float64
	fuelType   string
	fuelML     float64
	mass       float64
	latitude   float64
	azimuth    float64
	dt         float64
	integrator string
	interp     bool
	parallel   bool
	frameRate  int

	plotLo     float64
	plotHi     float64
	plotPoints int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spudsim",
		Short: "combustion cannon ballistics lab",
	}

	rootCmd.PersistentFlags().StringVar(&profilesPath, "profiles", "cannon_profiles.json", "profile store path")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&profileName, "cannon", "", "load stored cannon profile")

	shootCmd := &cobra.Command{
		Use:   "shoot",
		Short: "simulate a single shot",
		RunE:  shoot,
	}
	addShotFlags(shootCmd)
	shootCmd.Flags().Float64Var(&angle, "angle", 45.0, "launch angle (deg)")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "generate the firing table (15°–75°)",
		RunE:  firingTable,
	}
	addShotFlags(tableCmd)
	tableCmd.Flags().BoolVar(&parallel, "parallel", false, "run sweep angles concurrently")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot range vs launch angle",
		RunE:  plotCurve,
	}
	addShotFlags(plotCmd)
	plotCmd.Flags().Float64Var(&plotLo, "from", 10.0, "first angle (deg)")
	plotCmd.Flags().Float64Var(&plotHi, "to", 80.0, "last angle (deg)")
	plotCmd.Flags().IntVar(&plotPoints, "points", 50, "number of angles")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "replay a shot in the terminal",
		RunE:  liveShot,
	}
	addShotFlags(liveCmd)
	liveCmd.Flags().Float64Var(&angle, "angle", 45.0, "launch angle (deg)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	exportCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the firing table as CSV to stdout",
		RunE:  exportCSV,
	}
	addShotFlags(exportCmd)

	fuelsCmd := &cobra.Command{
		Use:   "fuels",
		Short: "list known fuels",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range cannon.Fuels() {
				density, _ := cannon.FuelEnergyDensity(name)
				fmt.Printf("%s\t%.0f MJ/m³\n", name, density)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(shootCmd, tableCmd, plotCmd, liveCmd, exportCmd,
		fuelsCmd, presetsCmd, profileCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addShotFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&windKMH, "wind", 0.0, "wind speed (km/h, tailwind positive)")
	cmd.Flags().StringVar(&fuelType, "fuel", "", "fuel type")
	cmd.Flags().Float64Var(&fuelML, "fuel-ml", 0.0, "fuel amount (ml)")
	cmd.Flags().Float64Var(&mass, "mass", 0.0, "projectile mass (kg)")
	cmd.Flags().Float64Var(&latitude, "lat", 0.0, "latitude (deg)")
	cmd.Flags().Float64Var(&azimuth, "azimuth", config.DefaultAzimuth, "azimuth (deg, 0=N 90=E)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().StringVar(&integrator, "integrator", "", "integrator (euler, rk4)")
	cmd.Flags().BoolVar(&interp, "interpolate", false, "interpolate the impact point to ground level")
}

// resolveConfig layers preset, config file, stored profile, and CLI flags,
// later sources overriding earlier ones. Flags only override when set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if profileName != "" {
		store := profile.New(profilesPath)
		rec, err := store.Load(profileName)
		if err != nil {
			return nil, err
		}
		cfg = rec.ToConfig()
	}

	if cmd.Flags().Changed("fuel") {
		cfg.Cannon.FuelType = fuelType
	}
	if cmd.Flags().Changed("fuel-ml") {
		cfg.Cannon.FuelVolumeML = fuelML
	}
	if cmd.Flags().Changed("mass") {
		cfg.Cannon.ProjectileMass = mass
	}
	if cmd.Flags().Changed("lat") {
		cfg.Site.Latitude = latitude
	}
	if cmd.Flags().Changed("azimuth") {
		cfg.Site.Azimuth = azimuth
	}
	if cmd.Flags().Changed("wind") {
		cfg.Site.WindKMH = windKMH
	}
	if cmd.Flags().Changed("dt") {
		cfg.Sim.Dt = dt
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Sim.Integrator = integrator
	}
	if cmd.Flags().Changed("interpolate") {
		cfg.Sim.InterpolateImpact = interp
	}

	return cfg, nil
}

// setup derives the muzzle estimate, air density, and simulator from a
// resolved configuration.
func setup(cfg *config.Config) (cannon.Estimate, float64, *ballistics.Simulator, ballistics.Config, error) {
	gun := cannon.Cannon{
		BarrelLength:    cfg.Cannon.BarrelLength,
		BarrelDiameter:  cfg.Cannon.BarrelDiameter,
		ChamberLength:   cfg.Cannon.ChamberLength,
		ChamberDiameter: cfg.Cannon.ChamberDiameter,
		ProjectileMass:  cfg.Cannon.ProjectileMass,
		FuelType:        cfg.Cannon.FuelType,
		FuelVolumeML:    cfg.Cannon.FuelVolumeML,
	}

	est, err := gun.EstimateMuzzleVelocity()
	if err != nil {
		return cannon.Estimate{}, 0, nil, ballistics.Config{}, err
	}

	rho := atmosphere.Density(cfg.Site.Altitude, cfg.Site.Temperature)

	sim := ballistics.New(
		ballistics.Projectile{
			Mass:      cfg.Cannon.ProjectileMass,
			DragCoeff: cfg.Cannon.DragCoeff,
			Area:      gun.BoreArea(),
		},
		ballistics.Environment{
			AirDensity:   rho,
			LaunchHeight: cfg.Cannon.LaunchHeight,
			WindSpeed:    cfg.Site.WindKMH / 3.6,
			LatitudeDeg:  cfg.Site.Latitude,
			AzimuthDeg:   cfg.Site.Azimuth,
		},
	)

	simCfg := ballistics.Config{
		Dt:                cfg.Sim.Dt,
		MaxSteps:          cfg.Sim.MaxSteps,
		Integrator:        cfg.Sim.Integrator,
		InterpolateImpact: cfg.Sim.InterpolateImpact,
	}

	return est, rho, sim, simCfg, nil
}

func shoot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	est, rho, sim, simCfg, err := setup(cfg)
	if err != nil {
		return err
	}

	report.WriteSummary(os.Stdout, est, rho)

	flight, err := sim.Fly(context.Background(), angle, est.MuzzleVelocity, simCfg)
	if err != nil {
		return err
	}

	fmt.Printf("\nrange: %.2f m | time: %.2f s | impact velocity: %.2f m/s | drift: %.2f m\n",
		flight.Range, flight.Time, flight.ImpactSpeed, flight.Drift)
	return nil
}

func firingTable(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	est, rho, sim, simCfg, err := setup(cfg)
	if err != nil {
		return err
	}

	report.WriteSummary(os.Stdout, est, rho)
	fmt.Println()

	ctx := context.Background()
	angles := ballistics.TableAngles()

	var shots []ballistics.Shot
	if parallel {
		shots, err = sim.SweepParallel(ctx, est.MuzzleVelocity, angles, simCfg)
	} else {
		shots, err = sim.Sweep(ctx, est.MuzzleVelocity, angles, simCfg)
	}
	if err != nil {
		return err
	}

	return report.WriteFiringTable(os.Stdout, shots)
}

func plotCurve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	est, _, sim, simCfg, err := setup(cfg)
	if err != nil {
		return err
	}

	angles := ballistics.CurveAngles(plotLo, plotHi, plotPoints)
	shots, err := sim.Sweep(context.Background(), est.MuzzleVelocity, angles, simCfg)
	if err != nil {
		return err
	}

	fmt.Println(report.RangeCurve(shots, 80, 15))
	return nil
}

func liveShot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	est, _, sim, simCfg, err := setup(cfg)
	if err != nil {
		return err
	}

	simCfg.RecordPath = true
	flight, err := sim.Fly(context.Background(), angle, est.MuzzleVelocity, simCfg)
	if err != nil {
		return err
	}

	return tui.Run(flight, angle, frameRate)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	est, _, sim, simCfg, err := setup(cfg)
	if err != nil {
		return err
	}

	shots, err := sim.Sweep(context.Background(), est.MuzzleVelocity, ballistics.TableAngles(), simCfg)
	if err != nil {
		return err
	}

	return report.WriteCSV(os.Stdout, shots)
}

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "manage stored cannon profiles",
	}

	saveCmd := &cobra.Command{
		Use:   "save [name]",
		Short: "save the resolved configuration under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Cannon.Name = args[0]

			store := profile.New(profilesPath)
			if err := store.Save(profile.FromConfig(cfg)); err != nil {
				return err
			}
			fmt.Printf("profile %q saved\n", args[0])
			return nil
		},
	}
	addShotFlags(saveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := profile.New(profilesPath)
			records, err := store.List()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no profiles found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBARREL\tCHAMBER\tMASS\tFUEL")
			for _, rec := range records {
				fmt.Fprintf(w, "%s\t%.2fm ⌀%.0fmm\t%.2fm ⌀%.0fmm\t%.0fg\t%s %.0fml\n",
					rec.Name,
					rec.BarrelLength, rec.BarrelDiameter*1000,
					rec.ChamberLength, rec.ChamberDiameter*1000,
					rec.ProjectileMass*1000,
					rec.FuelType, rec.FuelVolumeML,
				)
			}
			return w.Flush()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [name]",
		Short: "show a stored profile as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := profile.New(profilesPath)
			rec, err := store.Load(args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(rec.ToConfig())
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "delete a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := profile.New(profilesPath)
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("profile %q deleted\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(saveCmd, listCmd, showCmd, deleteCmd)
	return cmd
}
