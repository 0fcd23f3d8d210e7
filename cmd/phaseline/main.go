package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/phaseline/internal/analysis"
	"github.com/san-kum/phaseline/internal/config"
	"github.com/san-kum/phaseline/internal/continuous"
	"github.com/san-kum/phaseline/internal/discrete"
	"github.com/san-kum/phaseline/internal/dynamo"
	"github.com/san-kum/phaseline/internal/maps"
	"github.com/san-kum/phaseline/internal/phase"
	"github.com/san-kum/phaseline/internal/solvers"
	"github.com/san-kum/phaseline/internal/store"
	"github.com/san-kum/phaseline/internal/tui"
	"github.com/san-kum/phaseline/internal/viz"
)

var (
	dataDir    string
	param      float64
	x0         float64
	steps      int
	xtol       float64
	maxIter    int
	epsilon    float64
	dx         float64
	single     bool
	period     int
	solverName string
	dt         float64
	ahead      bool
	at         float64
	seeds      string
	size       int
	offset     int
	pmin       float64
	pmax       float64
	dp         float64
	transient  int
	keep       int
	frameRate  int
	configFile string
	preset     string
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phaseline",
		Short: "1D dynamical systems analysis lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".phaseline", "data directory")

	orbitCmd := &cobra.Command{
		Use:   "orbit [map]",
		Short: "iterate a discrete map and plot the orbit",
		Args:  cobra.ExactArgs(1),
		RunE:  runOrbit,
	}
	orbitCmd.Flags().Float64Var(&param, "param", math.NaN(), "map parameter")
	orbitCmd.Flags().Float64Var(&x0, "x0", math.NaN(), "initial condition")
	orbitCmd.Flags().IntVar(&steps, "steps", 100, "iteration count")
	orbitCmd.Flags().BoolVar(&ahead, "ahead", false, "seed with x0 and one advance")
	orbitCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	orbitCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	orbitCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")

	flowCmd := &cobra.Command{
		Use:   "flow [derivative]",
		Short: "advance a continuous system with a solver",
		Args:  cobra.ExactArgs(1),
		RunE:  runFlow,
	}
	flowCmd.Flags().Float64Var(&param, "param", math.NaN(), "derivative parameter")
	flowCmd.Flags().Float64Var(&x0, "x0", math.NaN(), "initial condition")
	flowCmd.Flags().IntVar(&steps, "steps", 1000, "step count")
	flowCmd.Flags().StringVar(&solverName, "solver", "rk4", "solver (euler, midpoint, rk4)")
	flowCmd.Flags().Float64Var(&dt, "dt", 0.01, "solver step size")

	fixedCmd := &cobra.Command{
		Use:   "fixed [map]",
		Short: "find a fixed point by accelerated iteration",
		Args:  cobra.ExactArgs(1),
		RunE:  runFixed,
	}
	fixedCmd.Flags().Float64Var(&param, "param", math.NaN(), "map parameter")
	fixedCmd.Flags().Float64Var(&x0, "x0", math.NaN(), "search seed")
	fixedCmd.Flags().Float64Var(&xtol, "xtol", discrete.DefaultXTol, "convergence tolerance")
	fixedCmd.Flags().IntVar(&maxIter, "maxiter", discrete.DefaultMaxIter, "iteration budget")

	stableCmd := &cobra.Command{
		Use:   "stable [map]",
		Short: "classify two-sided stability of a fixed point",
		Args:  cobra.ExactArgs(1),
		RunE:  runStable,
	}
	stableCmd.Flags().Float64Var(&param, "param", math.NaN(), "map parameter")
	stableCmd.Flags().Float64Var(&at, "at", math.NaN(), "fixed point (found from --x0 when omitted)")
	stableCmd.Flags().Float64Var(&x0, "x0", math.NaN(), "fixed-point search seed")
	stableCmd.Flags().Float64Var(&epsilon, "ep", 0.05, "perturbation radius")
	stableCmd.Flags().Float64Var(&dx, "dx", 0.01, "single perturbation magnitude")
	stableCmd.Flags().BoolVar(&single, "single", false, "single-perturbation variant")
	stableCmd.Flags().Float64Var(&xtol, "xtol", discrete.DefaultStabilityTol, "convergence tolerance")
	stableCmd.Flags().IntVar(&maxIter, "maxiter", discrete.DefaultMaxIter, "orbit length per sample")

	oscillateCmd := &cobra.Command{
		Use:   "oscillate [map]",
		Short: "detect a settled cycle and its period",
		Args:  cobra.ExactArgs(1),
		RunE:  runOscillate,
	}
	oscillateCmd.Flags().Float64Var(&param, "param", math.NaN(), "map parameter")
	oscillateCmd.Flags().Float64Var(&x0, "x0", math.NaN(), "initial condition")
	oscillateCmd.Flags().IntVar(&period, "period", 8, "maximum period to search")
	oscillateCmd.Flags().Float64Var(&xtol, "xtol", discrete.DefaultStabilityTol, "lag-match tolerance")
	oscillateCmd.Flags().IntVar(&maxIter, "maxiter", discrete.DefaultMaxIter, "orbit length")

	phaseCmd := &cobra.Command{
		Use:   "phase [map]",
		Short: "render a textual phase-line diagram",
		Args:  cobra.ExactArgs(1),
		RunE:  runPhase,
	}
	phaseCmd.Flags().Float64Var(&param, "param", math.NaN(), "map parameter")
	phaseCmd.Flags().StringVar(&seeds, "seeds", "0.1,0.5,0.9", "fixed-point search seeds (comma separated)")
	phaseCmd.Flags().Float64Var(&epsilon, "ep", 0.05, "stability perturbation radius")
	phaseCmd.Flags().IntVar(&size, "size", config.DefaultSize, "diagram width")
	phaseCmd.Flags().IntVar(&offset, "offset", config.DefaultOffset, "diagram margin offset")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation [map]",
		Short: "sweep the map parameter and plot settled values",
		Args:  cobra.ExactArgs(1),
		RunE:  runBifurcation,
	}
	bifurcationCmd.Flags().Float64Var(&pmin, "pmin", 2.5, "sweep start")
	bifurcationCmd.Flags().Float64Var(&pmax, "pmax", 4.0, "sweep end")
	bifurcationCmd.Flags().Float64Var(&dp, "dp", 0.005, "sweep stride")
	bifurcationCmd.Flags().Float64Var(&x0, "x0", math.NaN(), "initial condition")
	bifurcationCmd.Flags().IntVar(&transient, "transient", 200, "transient iterations to discard")
	bifurcationCmd.Flags().IntVar(&keep, "keep", 100, "iterations to record")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [map]",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.ExactArgs(1),
		RunE:  runLyapunov,
	}
	lyapunovCmd.Flags().Float64Var(&param, "param", math.NaN(), "map parameter")
	lyapunovCmd.Flags().Float64Var(&x0, "x0", math.NaN(), "initial condition")
	lyapunovCmd.Flags().IntVar(&transient, "transient", 200, "transient iterations to discard")
	lyapunovCmd.Flags().IntVar(&steps, "steps", 2000, "iterations to accumulate")

	liveCmd := &cobra.Command{
		Use:   "live [map]",
		Short: "watch an orbit evolve in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&param, "param", math.NaN(), "map parameter")
	liveCmd.Flags().Float64Var(&x0, "x0", math.NaN(), "initial condition")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

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
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [map]",
		Short: "list available presets for a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for map: %s\n", args[0])
				return nil
			}
			sort.Strings(names)
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	mapsCmd := &cobra.Command{
		Use:   "maps",
		Short: "list registered map and derivative families",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tDEFAULT PARAM\tDESCRIPTION")
			for _, name := range maps.Names() {
				e, _ := maps.Lookup(name)
				fmt.Fprintf(w, "%s\tdiscrete\t%g\t%s\n", e.Name, e.DefaultParam, e.Desc)
			}
			for _, name := range maps.DerivNames() {
				e, _ := maps.DerivLookup(name)
				fmt.Fprintf(w, "%s\tcontinuous\t%g\t%s\n", e.Name, e.DefaultParam, e.Desc)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(orbitCmd, flowCmd, fixedCmd, stableCmd, oscillateCmd,
		phaseCmd, bifurcationCmd, lyapunovCmd, liveCmd, listCmd, plotCmd,
		exportCmd, presetsCmd, mapsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveMap looks up a discrete family and fills param/x0 defaults for any
// flag left unset.
func resolveMap(name string) (dynamo.Map, error) {
	e, err := maps.Lookup(name)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(param) {
		param = e.DefaultParam
	}
	if math.IsNaN(x0) {
		x0 = e.DefaultSeed
	}
	return e.New(param), nil
}

func runOrbit(cmd *cobra.Command, args []string) error {
	mapName := args[0]

	if preset != "" {
		cfg := config.GetPreset(mapName, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mapName))
		}
		param = cfg.Param
		x0 = cfg.X0
		steps = cfg.Steps
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("param") {
			param = cfg.Param
		}
		if !cmd.Flags().Changed("x0") {
			x0 = cfg.X0
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
	}

	f, err := resolveMap(mapName)
	if err != nil {
		return err
	}

	var orbit dynamo.Orbit
	if ahead {
		orbit, err = discrete.IterateAhead(f, x0, steps)
	} else {
		orbit, err = discrete.Iterate(f, x0, steps)
	}
	if err != nil {
		return err
	}

	fmt.Println(viz.TitleStyle.Render(fmt.Sprintf("%s orbit (param=%g, x0=%g)", mapName, param, x0)))
	fmt.Println(viz.PlotOrbit(orbit, "x vs t", 80, 12))
	fmt.Println(viz.Field("length", "%d", len(orbit)))
	fmt.Println(viz.Field("final x", "%.8f", orbit.Last()))
	if !orbit.IsValid() {
		fmt.Println(viz.UnstableStyle.Render("orbit diverged (NaN/Inf)"))
	}

	if noSave {
		return nil
	}
	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(store.RunMetadata{
		Map:   mapName,
		Param: param,
		X0:    x0,
		Steps: steps,
		Results: map[string]float64{
			"final_x": orbit.Last(),
		},
	}, orbit)
	if err != nil {
		return err
	}
	fmt.Println(viz.Field("run id", "%s", runID))
	return nil
}

func runFlow(cmd *cobra.Command, args []string) error {
	e, err := maps.DerivLookup(args[0])
	if err != nil {
		return err
	}
	if math.IsNaN(param) {
		param = e.DefaultParam
	}
	if math.IsNaN(x0) {
		x0 = e.DefaultSeed
	}

	solve, err := solvers.ByName(solverName, dt)
	if err != nil {
		return err
	}

	orbit, elapsed, err := continuous.Iterate(e.New(param), x0, steps, solve)
	if err != nil {
		return err
	}

	fmt.Println(viz.TitleStyle.Render(fmt.Sprintf("%s flow (param=%g, x0=%g, %s)", e.Name, param, x0, solverName)))
	fmt.Println(viz.PlotOrbit(orbit, "x vs step", 80, 12))
	fmt.Println(viz.Field("steps", "%d", steps))
	fmt.Println(viz.Field("elapsed t", "%.4f", elapsed))
	fmt.Println(viz.Field("final x", "%.8f", orbit.Last()))
	return nil
}

func runFixed(cmd *cobra.Command, args []string) error {
	f, err := resolveMap(args[0])
	if err != nil {
		return err
	}

	xfix, err := discrete.FixedPoint(f, x0, xtol, maxIter)
	if err != nil {
		var cerr *dynamo.ConvergenceError
		if errors.As(err, &cerr) {
			return fmt.Errorf("no fixed point reachable from %g: %w", x0, err)
		}
		return err
	}

	fmt.Println(viz.Field("fixed point", "%.10f", xfix))
	fmt.Println(viz.Field("residual", "%.3e", math.Abs(f(xfix)-xfix)))
	return nil
}

func runStable(cmd *cobra.Command, args []string) error {
	f, err := resolveMap(args[0])
	if err != nil {
		return err
	}

	xfix := at
	if math.IsNaN(xfix) {
		xfix, err = discrete.FixedPoint(f, x0, discrete.DefaultXTol, maxIter)
		if err != nil {
			return err
		}
		fmt.Println(viz.Field("fixed point", "%.10f", xfix))
	}

	var st dynamo.Stability
	if single {
		st, err = discrete.IsStableAt(f, xfix, dx, xtol, maxIter)
	} else {
		st, err = discrete.IsStable(f, xfix, epsilon, xtol, maxIter)
	}
	if err != nil {
		return err
	}

	fmt.Println(viz.Field("above", "%s", viz.StabilityBadge(st.Plus)))
	fmt.Println(viz.Field("below", "%s", viz.StabilityBadge(st.Minus)))
	return nil
}

func runOscillate(cmd *cobra.Command, args []string) error {
	f, err := resolveMap(args[0])
	if err != nil {
		return err
	}

	periodic, detected, err := discrete.IsOscillator(f, x0, period, xtol, maxIter)
	if err != nil {
		return err
	}

	if periodic {
		fmt.Println(viz.Field("periodic", "%s", viz.StableStyle.Render("yes")))
		fmt.Println(viz.Field("period", "%d", detected))
	} else {
		fmt.Println(viz.Field("periodic", "%s", viz.UnstableStyle.Render("no")))
	}
	return nil
}

func runPhase(cmd *cobra.Command, args []string) error {
	f, err := resolveMap(args[0])
	if err != nil {
		return err
	}

	var points []float64
	for _, s := range strings.Split(seeds, ",") {
		seed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("bad seed %q: %w", s, err)
		}
		xfix, err := discrete.FixedPoint(f, seed, discrete.DefaultXTol, discrete.DefaultMaxIter)
		if err != nil {
			continue // seed found no fixed point
		}
		points = append(points, xfix)
	}
	points = dedupe(points, 1e-6)
	sort.Float64s(points)

	stability := make([]dynamo.Stability, len(points))
	for i, xfix := range points {
		st, err := discrete.IsStable(f, xfix, epsilon, discrete.DefaultStabilityTol, discrete.DefaultMaxIter)
		if err != nil {
			return err
		}
		stability[i] = st
	}

	diagram, err := phase.Diagram(points, stability, size, offset)
	if err != nil {
		return err
	}

	fmt.Println(viz.TitleStyle.Render(fmt.Sprintf("%s phase line (param=%g)", args[0], param)))
	fmt.Println(viz.DiagramStyle.Render(diagram))
	for i, xfix := range points {
		fmt.Println(viz.Field(fmt.Sprintf("x* = %.4f", xfix), "above %s, below %s",
			viz.StabilityBadge(stability[i].Plus), viz.StabilityBadge(stability[i].Minus)))
	}
	return nil
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	e, err := maps.Lookup(args[0])
	if err != nil {
		return err
	}
	if e.Family == nil {
		return fmt.Errorf("map %s has no sweepable parameter", e.Name)
	}
	if math.IsNaN(x0) {
		x0 = e.DefaultSeed
	}

	data := analysis.Bifurcation(e.Family, pmin, pmax, dp, x0, transient, keep)
	if len(data) == 0 {
		return fmt.Errorf("empty sweep: check pmin/pmax/dp")
	}

	fmt.Println(viz.TitleStyle.Render(fmt.Sprintf("%s bifurcation, param %g..%g", e.Name, pmin, pmax)))
	fmt.Print(analysis.BifurcationASCII(data, 100, 30))
	return nil
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	f, err := resolveMap(args[0])
	if err != nil {
		return err
	}

	lambda := analysis.Lyapunov(f, x0, transient, steps)
	fmt.Println(viz.Field("lyapunov", "%.6f", lambda))
	if lambda > 0 {
		fmt.Println(viz.UnstableStyle.Render("chaotic"))
	} else {
		fmt.Println(viz.StableStyle.Render("non-chaotic"))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	f, err := resolveMap(args[0])
	if err != nil {
		return err
	}
	return tui.Run(f, args[0], x0, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMAP\tTIME\tPARAM\tX0\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%d\n",
			run.ID,
			run.Map,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Param,
			run.X0,
			run.Steps,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	orbit, err := st.LoadOrbit(args[0])
	if err != nil {
		return err
	}
	if len(orbit) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println(viz.Field("run", "%s", meta.ID))
	fmt.Println(viz.Field("map", "%s (param=%g)", meta.Map, meta.Param))
	fmt.Println(viz.Field("samples", "%d", len(orbit)))
	fmt.Println()
	fmt.Println(viz.PlotOrbit(orbit, "x vs t", 80, 12))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// dedupe collapses values closer than tol, keeping first occurrences.
func dedupe(values []float64, tol float64) []float64 {
	out := values[:0]
	for _, v := range values {
		found := false
		for _, u := range out {
			if math.Abs(v-u) < tol {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}
	return out
}
