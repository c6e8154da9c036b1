package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/anim"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/export"
	"github.com/san-kum/lifesim/internal/gui"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/storage"
	"github.com/san-kum/lifesim/internal/tui"
	"github.com/san-kum/lifesim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string

	// Grid flags, applied over preset and config file
	width     int
	height    int
	res       int
	limit     int
	speed     int
	seed      int64
	pattern   string
	fps       int
	maxFrames int
	theme     string

	svgPath  string
	noSave   bool
	seeds    int
	maxGens  int
	jsonPath string
)

// main registers the lifesim commands and opens the preset picker when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "lifesim",
		Short:        "conway's game of life on a bounded grid",
		SilenceUsage: true,
		RunE:         pickAndRun,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".lifesim", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&width, "width", config.DefaultWidth, "surface width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "surface height in pixels")
	pf.IntVar(&res, "res", config.DefaultRes, "cell size in pixels")
	pf.IntVar(&limit, "limit", config.DefaultLimit, "initial live cell percentage")
	pf.IntVar(&speed, "speed", config.DefaultSpeed, "frames per generation")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.StringVar(&pattern, "pattern", "", "start from a named pattern instead of noise")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate (0 runs unpaced)")
	pf.IntVar(&maxFrames, "max-frames", config.DefaultMaxFrames, "frame budget for headless runs (0 is unlimited)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "tui theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and save the run",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final frame as svg")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not save a run record")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate in the terminal",
		RunE:  runLive,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show <run_id>",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().StringVar(&svgPath, "svg", "", "write the population chart as svg")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json <run_id>",
		Short: "export a run with its population as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&jsonPath, "output", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and patterns",
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "simulate many seeds in parallel",
		RunE:  benchSeeds,
	}
	benchCmd.Flags().IntVar(&seeds, "seeds", 8, "number of seeds")
	benchCmd.Flags().IntVar(&maxGens, "gens", 2000, "generation cap per seed")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, listCmd, showCmd, exportJSONCmd, presetsCmd, benchCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("res") {
		cfg.Res = res
	}
	if flags.Changed("limit") {
		cfg.Limit = limit
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("max-frames") {
		cfg.MaxFrames = maxFrames
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newGrid builds and populates the grid described by cfg.
func newGrid(cfg *config.Config) (*life.Grid, error) {
	w, h := cfg.GridSize()
	g, err := life.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	if err := life.Populate(g, cfg.Pattern, rng, cfg.Limit); err != nil {
		return nil, err
	}
	return g, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	g, err := newGrid(cfg)
	if err != nil {
		return err
	}

	canvas := viz.NewPixelCanvas(cfg.Width, cfg.Height)
	surfaces := anim.MultiSurface{canvas}
	var svg *export.SVG
	if svgPath != "" {
		svg = export.NewSVG(cfg.Width, cfg.Height)
		surfaces = append(surfaces, svg)
	}

	ctrl, err := anim.NewController(g, surfaces, anim.Config{CellSize: cfg.Res, Speed: cfg.Speed})
	if err != nil {
		return err
	}
	pop := metrics.NewPopulation(0)
	cycle := metrics.NewCycleDetector(2)
	ctrl.AddObserver(pop)
	ctrl.AddObserver(cycle)

	queue := &anim.FrameQueue{}
	anim.NewAnimator(ctrl, queue).Start()

	fmt.Fprintf(out, "running %dx%d grid, seed %d...\n", g.Width, g.Height, cfg.Seed)
	start := time.Now()

	frames, err := queue.Run(cmd.Context(), cfg.MaxFrames, 0)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintln(out, canvas.String())
	fmt.Fprintln(out)

	series := pop.Series()
	if len(series) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("living cells per generation"),
		))
		fmt.Fprintln(out)
	}

	peak, peakGen := pop.Peak()
	period, hasPeriod := analysis.DominantPeriod(series)

	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "state: %s\n", ctrl.State())
	fmt.Fprintf(out, "frames: %d\n", frames)
	fmt.Fprintf(out, "generations: %d\n", ctrl.Generation())
	fmt.Fprintf(out, "living: %d (peak %d at gen %d)\n", ctrl.Living(), peak, peakGen)
	if cycle.Stagnant() {
		fmt.Fprintf(out, "cycle: period %d since gen %d\n", cycle.Period(), cycle.Since())
	}
	if hasPeriod {
		fmt.Fprintf(out, "dominant period: %.1f generations\n", period)
	}

	if svg != nil {
		f, err := os.Create(svgPath)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", svgPath)
		}
		defer f.Close()
		if _, err := svg.WriteTo(f); err != nil {
			return errors.Wrapf(err, "failed to write %s", svgPath)
		}
		fmt.Fprintf(out, "svg: %s\n", svgPath)
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	meta := storage.RunMetadata{
		Config:      *cfg,
		Frames:      frames,
		Generations: ctrl.Generation(),
		FinalLiving: ctrl.Living(),
		Peak:        peak,
		State:       ctrl.State().String(),
		Metrics: map[string]float64{
			"mean_living":  pop.Mean(),
			"elapsed_ms":   float64(elapsed.Milliseconds()),
			"cycle_period": float64(cycle.Period()),
		},
	}
	if hasPeriod {
		meta.Period = period
	}
	runID, err := st.Save(meta, pop.History())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "run id: %s\n", runID)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	m, err := viz.NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func pickAndRun(cmd *cobra.Command, args []string) error {
	cfg, err := tui.Pick()
	if err != nil || cfg == nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	m, err := viz.NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tGRID\tSEED\tGENS\tLIVING\tSTATE")

	for _, run := range runs {
		gw, gh := run.Config.GridSize()
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			gw, gh,
			run.Config.Seed,
			run.Generations,
			run.FinalLiving,
			run.State,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	population, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}

	gw, gh := meta.Config.GridSize()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "grid: %dx%d cells at %dpx, limit %d%%, speed %d\n", gw, gh, meta.Config.Res, meta.Config.Limit, meta.Config.Speed)
	if meta.Config.Pattern != "" {
		fmt.Fprintf(out, "pattern: %s\n", meta.Config.Pattern)
	}
	fmt.Fprintf(out, "state: %s after %d generations (%d frames)\n", meta.State, meta.Generations, meta.Frames)
	fmt.Fprintf(out, "living: %d, peak %d\n", meta.FinalLiving, meta.Peak)
	if meta.Period > 0 {
		fmt.Fprintf(out, "dominant period: %.1f\n", meta.Period)
	}

	if len(meta.Metrics) > 0 {
		fmt.Fprintln(out, "\nmetrics:")
		names := make([]string, 0, len(meta.Metrics))
		for name := range meta.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %s: %.3f\n", name, meta.Metrics[name])
		}
	}

	data := make([]float64, len(population))
	for i, n := range population {
		data[i] = float64(n)
	}
	if len(data) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("living cells per generation"),
		))
	}

	if svgPath != "" {
		chart := export.SeriesToSVG(data, 800, 300, "#00ff88")
		if chart == "" {
			return fmt.Errorf("not enough generations to plot")
		}
		if err := os.WriteFile(svgPath, []byte(chart), 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", svgPath)
		}
		fmt.Fprintf(out, "svg: %s\n", svgPath)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if jsonPath != "" {
		return st.ExportJSON(args[0], jsonPath)
	}

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	population, err := st.LoadPopulation(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(storage.ExportData{RunMetadata: *meta, Population: population})
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSURFACE\tRES\tLIMIT\tSPEED\tPATTERN")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		pat := p.Pattern
		if pat == "" {
			pat = "random"
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%d%%\t%d\t%s\n", name, p.Width, p.Height, p.Res, p.Limit, p.Speed, pat)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\npatterns:")
	for _, name := range life.PatternNames() {
		p, _ := life.PatternByName(name)
		fmt.Fprintf(out, "  %-8s %s\n", name, p.Descr)
	}
	return nil
}

// benchSeeds runs one grid per seed in parallel. Each grid stops at
// extinction, at a detected cycle or at the generation cap.
func benchSeeds(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if seeds < 1 {
		return fmt.Errorf("seeds must be positive, got %d", seeds)
	}

	results, err := sim.NewEnsemble(cfg, seeds).Run(cmd.Context(), maxGens)
	if err != nil {
		return err
	}

	gw, gh := cfg.GridSize()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %d seeds on %dx%d\n\n", seeds, gw, gh)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tGENS\tLIVING\tPERIOD\tTIME\tGENS/SEC")
	for _, r := range results {
		period := "-"
		if r.Period > 0 {
			period = fmt.Sprintf("%d", r.Period)
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%v\t%.0f\n",
			r.Seed, r.Generations, r.Living, period, r.Elapsed, r.GensPerSecond())
	}
	return w.Flush()
}
