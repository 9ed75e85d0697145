package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/halosim/internal/astro"
	"github.com/san-kum/halosim/internal/config"
	"github.com/san-kum/halosim/internal/cosmo"
	"github.com/san-kum/halosim/internal/curve"
	"github.com/san-kum/halosim/internal/export"
	"github.com/san-kum/halosim/internal/storage"
	"github.com/san-kum/halosim/internal/tui"
	"github.com/san-kum/halosim/internal/units"
	"github.com/spf13/cobra"
)

var (
	dataDir       string
	totalMass     float64
	scaleRadius   float64
	concentration float64
	rMin          float64
	rMax          float64
	points        int
	logGrid       bool
	noSave        bool
	// Particle parameters
	particleMass float64
	positionStr  string
	velocityStr  string
	// Compare
	compareRadius float64
	// Export
	exportOut    string
	exportSeries string
	// Config file / preset
	configFile string
	preset     string
)

// main registers the halosim commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "halosim",
		Short: "dark matter halo and particle toolkit",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.DefaultConfig()
			if err := tui.Run(cfg); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".halosim", "data directory")

	rotationCmd := &cobra.Command{
		Use:   "rotation",
		Short: "sample and plot a halo rotation curve",
		RunE:  runRotation,
	}
	addHaloFlags(rotationCmd)
	addGridFlags(rotationCmd)
	rotationCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "print the NFW density profile",
		RunE:  runProfile,
	}
	addHaloFlags(profileCmd)
	addGridFlags(profileCmd)

	particleCmd := &cobra.Command{
		Use:   "particle",
		Short: "kinetic energy and momentum of a dark matter particle",
		RunE:  runParticle,
	}
	particleCmd.Flags().Float64Var(&particleMass, "mass", 100, "particle mass (GeV/c²)")
	particleCmd.Flags().StringVar(&positionStr, "pos", "0,0,0", "position x,y,z")
	particleCmd.Flags().StringVar(&velocityStr, "vel", "0,0,0", "velocity vx,vy,vz")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare preset halos at a fixed radius",
		RunE:  runCompare,
	}
	compareCmd.Flags().Float64Var(&compareRadius, "r", 20, "radius (kpc)")

	compositionCmd := &cobra.Command{
		Use:   "composition",
		Short: "universe energy/matter composition",
		RunE:  runComposition,
	}

	wimpCmd := &cobra.Command{
		Use:   "wimp",
		Short: "WIMP candidate properties",
		RunE:  runWIMP,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "curve.svg", "output file")
	exportCmd.Flags().StringVar(&exportSeries, "series", "velocity", "series to export (velocity|density|mass)")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive halo explorer",
		RunE:  runExplore,
	}
	addHaloFlags(exploreCmd)

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "illustrative particle and halo",
		RunE:  runDemo,
	}

	rootCmd.AddCommand(rotationCmd, profileCmd, particleCmd, compareCmd,
		compositionCmd, wimpCmd, listCmd, plotCmd, exportCmd, exploreCmd, demoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addHaloFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&totalMass, "mass", config.DefaultTotalMass, "total halo mass (Msun)")
	cmd.Flags().Float64Var(&scaleRadius, "rs", config.DefaultScaleRadius, "scale radius (kpc)")
	cmd.Flags().Float64Var(&concentration, "c", config.DefaultConcentration, "virial concentration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset halo")
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&rMin, "rmin", config.DefaultRMin, "minimum radius (kpc)")
	cmd.Flags().Float64Var(&rMax, "rmax", config.DefaultRMax, "maximum radius (kpc)")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of sample radii")
	cmd.Flags().BoolVar(&logGrid, "log", false, "logarithmic radius spacing")
}

// resolveConfig layers preset, config file and CLI flags, with flags
// winning over the file and the file winning over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
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

	if cmd.Flags().Changed("mass") {
		cfg.Halo.TotalMass = totalMass
	}
	if cmd.Flags().Changed("rs") {
		cfg.Halo.ScaleRadius = scaleRadius
	}
	if cmd.Flags().Changed("c") {
		cfg.Halo.Concentration = concentration
	}
	if cmd.Flags().Changed("rmin") {
		cfg.Grid.RMin = rMin
	}
	if cmd.Flags().Changed("rmax") {
		cfg.Grid.RMax = rMax
	}
	if cmd.Flags().Changed("points") {
		cfg.Grid.Points = points
	}
	if cmd.Flags().Changed("log") {
		cfg.Grid.Log = logGrid
	}

	return cfg, nil
}

func buildHalo(cfg *config.Config) (*astro.Halo, error) {
	return astro.NewHaloWithConcentration(cfg.Halo.TotalMass, cfg.Halo.ScaleRadius, cfg.Halo.Concentration)
}

func runRotation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	halo, err := buildHalo(cfg)
	if err != nil {
		return err
	}

	grid := curve.Grid{Min: cfg.Grid.RMin, Max: cfg.Grid.RMax, Points: cfg.Grid.Points, Log: cfg.Grid.Log}
	result, err := curve.Sample(halo, grid)
	if err != nil {
		return err
	}

	fmt.Println(halo)
	fmt.Printf("virial radius: %.1f kpc\n\n", halo.VirialRadius())

	graph := asciigraph.Plot(result.Velocities,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("rotation velocity (km/s)"),
	)
	fmt.Println(graph)

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.4f\n", name, val)
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		TotalMass:     cfg.Halo.TotalMass,
		ScaleRadius:   cfg.Halo.ScaleRadius,
		Concentration: cfg.Halo.Concentration,
		RMin:          cfg.Grid.RMin,
		RMax:          cfg.Grid.RMax,
		Points:        cfg.Grid.Points,
	}, result)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	halo, err := buildHalo(cfg)
	if err != nil {
		return err
	}

	grid := curve.Grid{Min: cfg.Grid.RMin, Max: cfg.Grid.RMax, Points: cfg.Grid.Points, Log: cfg.Grid.Log}
	result, err := curve.Sample(halo, grid)
	if err != nil {
		return err
	}

	fmt.Println(halo)
	fmt.Printf("characteristic density: %.4g Msun/kpc³\n\n", halo.CharacteristicDensity())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "R (kpc)\tDENSITY (Msun/kpc³)\tDENSITY (GeV/cm³)\tM(<r) (Msun)")
	for i, r := range result.Radii {
		fmt.Fprintf(w, "%.2f\t%.4g\t%.4g\t%.4g\n",
			r,
			result.Densities[i],
			units.DensityToGeVPerCm3(result.Densities[i]),
			result.EnclosedMasses[i],
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	logDensities := make([]float64, len(result.Densities))
	for i, d := range result.Densities {
		logDensities[i] = math.Log10(d)
	}
	fmt.Println()
	graph := asciigraph.Plot(logDensities,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("log10 density (Msun/kpc³)"),
	)
	fmt.Println(graph)
	return nil
}

func runParticle(cmd *cobra.Command, args []string) error {
	pos, err := parseVec3(positionStr)
	if err != nil {
		return fmt.Errorf("invalid --pos: %w", err)
	}
	vel, err := parseVec3(velocityStr)
	if err != nil {
		return fmt.Errorf("invalid --vel: %w", err)
	}

	p, err := astro.NewParticle(particleMass, pos, vel)
	if err != nil {
		return err
	}

	mom := p.Momentum()
	fmt.Println(p)
	fmt.Printf("kinetic energy: %.2f GeV\n", p.KineticEnergy())
	fmt.Printf("speed: %.4f\n", p.Speed())
	fmt.Printf("momentum: (%.2f, %.2f, %.2f)\n", mom.X, mom.Y, mom.Z)
	return nil
}

func parseVec3(s string) (astro.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return astro.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(parts))
	}
	vals := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return astro.Vec3{}, err
		}
		vals[i] = v
	}
	return astro.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	if compareRadius <= 0 {
		return fmt.Errorf("radius must be positive")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "PRESET\tMASS (Msun)\tRS (kpc)\tV(%.0f kpc) (km/s)\n", compareRadius)

	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		halo, err := buildHalo(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.3g\t%.1f\t%.2f\n",
			name,
			halo.TotalMass,
			halo.ScaleRadius,
			halo.RotationCurve(compareRadius),
		)
	}
	return w.Flush()
}

func runComposition(cmd *cobra.Command, args []string) error {
	comp := cosmo.UniverseComposition()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMPONENT\tPERCENT")
	fmt.Fprintf(w, "dark energy\t%.1f\n", comp.DarkEnergy)
	fmt.Fprintf(w, "dark matter\t%.1f\n", comp.DarkMatter)
	fmt.Fprintf(w, "ordinary matter\t%.1f\n", comp.OrdinaryMatter)
	fmt.Fprintf(w, "total\t%.1f\n", comp.Total())
	return w.Flush()
}

func runWIMP(cmd *cobra.Command, args []string) error {
	props := cosmo.WIMPProperties()
	fmt.Println("WIMP (Weakly Interacting Massive Particle)")
	fmt.Printf("  mass range:  %s\n", props.MassRange)
	fmt.Printf("  interaction: %s\n", props.Interaction)
	fmt.Printf("  stability:   %s\n", props.Stability)
	fmt.Printf("  detection:   %s\n", props.Detection)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tMASS (Msun)\tRS (kpc)\tC\tPOINTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.3g\t%.1f\t%.1f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.TotalMass,
			run.ScaleRadius,
			run.Concentration,
			run.Points,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	result, err := st.LoadCurve(runID)
	if err != nil {
		return err
	}
	if len(result.Radii) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("halo: %.3g Msun, rs=%.1f kpc, c=%.1f\n", meta.TotalMass, meta.ScaleRadius, meta.Concentration)
	fmt.Printf("samples: %d\n\n", len(result.Radii))

	graph := asciigraph.Plot(result.Velocities,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("rotation velocity (km/s)"),
	)
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	result, err := st.LoadCurve(runID)
	if err != nil {
		return err
	}
	if len(result.Radii) < 2 {
		return fmt.Errorf("no data to export")
	}

	var values []float64
	switch exportSeries {
	case "velocity":
		values = result.Velocities
	case "density":
		values = result.Densities
	case "mass":
		values = result.EnclosedMasses
	default:
		return fmt.Errorf("unknown series: %s", exportSeries)
	}

	svg := export.CurveToSVG(result.Radii, values, 800, 400, "#00ff88")
	if err := os.WriteFile(exportOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", exportOut)
	return nil
}

// runDemo builds one particle and one halo with illustrative constants and
// prints their derived quantities.
func runDemo(cmd *cobra.Command, args []string) error {
	p, err := astro.NewParticle(100, astro.Vec3{X: 1, Y: 2, Z: 3}, astro.Vec3{X: 10, Y: 20, Z: 15})
	if err != nil {
		return err
	}
	fmt.Println(p)
	fmt.Printf("kinetic energy: %.2f GeV\n\n", p.KineticEnergy())

	halo, err := astro.NewHalo(1e12, 20)
	if err != nil {
		return err
	}
	fmt.Println(halo)
	fmt.Println("\nrotation curve:")
	for _, r := range []float64{5, 10, 20, 40, 80} {
		fmt.Printf("  r = %3.0f kpc: v = %.2f km/s\n", r, halo.RotationCurve(r))
	}
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}
