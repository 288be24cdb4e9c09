package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/generate"
	"github.com/san-kum/sortviz/internal/server"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	verbose    bool
	configFile string
	preset     string
	fallback   bool
	// Input
	kind   string
	size   int
	seed   int64
	values string
	minVal int
	maxVal int
	swaps  int
	unique int
	// Playback
	speed int
	theme string
	// Output
	check     bool
	outPath   string
	frameIdx  int
	svgWidth  int
	svgHeight int
	// Comparison runs
	playLanes bool
	sizes     []int
	workers   int
	outDir    string
	numTrials int
	// Server
	addr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "sorting algorithm animation traces",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	runCmd := &cobra.Command{
		Use:     "run [algorithm]",
		Aliases: []string{"trace"},
		Short:   "trace an algorithm and print the result",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runTrace,
	}
	addInputFlags(runCmd)
	runCmd.Flags().BoolVar(&check, "check", false, "validate trace invariants")
	runCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"catalog"},
		Short:   "list algorithms",
		Args:    cobra.NoArgs,
		RunE:    listAlgorithms,
	}

	infoCmd := &cobra.Command{
		Use:   "info [algorithm]",
		Short: "show algorithm metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	generateCmd := &cobra.Command{
		Use:   "generate [kind]",
		Short: "generate an input array",
		Args:  cobra.MaximumNArgs(1),
		RunE:  generateInput,
	}
	addInputFlags(generateCmd)

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "animate a trace in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playTrace,
	}
	addInputFlags(playCmd)
	addPlaybackFlags(playCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm1] [algorithm2] ...",
		Short: "trace several algorithms on the same input",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareAlgorithms,
	}
	addInputFlags(compareCmd)
	addPlaybackFlags(compareCmd)
	compareCmd.Flags().BoolVar(&playLanes, "play", false, "animate the traces side by side")

	complexityCmd := &cobra.Command{
		Use:   "complexity [algorithm]",
		Short: "measure operation counts across input sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  measureComplexity,
	}
	complexityCmd.Flags().StringVar(&kind, "kind", config.DefaultKind, "input kind")
	complexityCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	complexityCmd.Flags().IntSliceVar(&sizes, "sizes", experiment.DefaultSizes, "input sizes")
	complexityCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 means one per CPU)")

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot counters over the frames of a trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotTrace,
	}
	addInputFlags(plotCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [algorithm]",
		Short: "export a trace to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	addInputFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [algorithm]",
		Short: "export a trace to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	addInputFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "export a frame or the counter curves to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	addInputFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&frameIdx, "frame", -1, "frame index, negative counts from the end")
	exportSVGCmd.Flags().Bool("counters", false, "plot counters instead of a frame")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tALGORITHM\tKIND\tSIZE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", name, p.Algorithm, p.Input.Kind, p.Input.Size)
			}
			return w.Flush()
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run the steps of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVar(&outDir, "out", ".", "directory for saved traces")

	trialsCmd := &cobra.Command{
		Use:   "trials [algorithm]",
		Short: "repeat an algorithm over fresh random inputs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrials,
	}
	addInputFlags(trialsCmd)
	trialsCmd.Flags().IntVar(&numTrials, "trials", 20, "number of trials")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve traces over HTTP",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")

	rootCmd.AddCommand(runCmd, listCmd, infoCmd, generateCmd, playCmd, compareCmd, complexityCmd,
		plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd, scenarioCmd, trialsCmd, serveCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().BoolVar(&fallback, "fallback", false, "fall back to bubble for unknown algorithms")
	cmd.Flags().StringVar(&kind, "kind", config.DefaultKind, "input kind: random, nearly-sorted, reversed, few-unique, custom")
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "input size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	cmd.Flags().StringVar(&values, "values", "", "comma separated input values, implies --kind custom")
	cmd.Flags().IntVar(&minVal, "min", generate.DefaultMin, "minimum random value")
	cmd.Flags().IntVar(&maxVal, "max", generate.DefaultMax, "maximum random value")
	cmd.Flags().IntVar(&swaps, "swaps", generate.DefaultSwaps, "swaps applied to nearly-sorted input")
	cmd.Flags().IntVar(&unique, "unique", generate.DefaultUnique, "distinct values in few-unique input")
}

func addPlaybackFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&speed, "speed", config.DefaultSpeed, "playback speed 1-10")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme: "+strings.Join(viz.ThemeNames(), ", "))
}

// loadConfig layers defaults, preset, config file, flags that were set
// explicitly, and finally the positional algorithm.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
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
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("kind") {
		cfg.Input.Kind = kind
	}
	if flags.Changed("size") {
		cfg.Input.Size = size
	}
	if flags.Changed("seed") {
		cfg.Input.Seed = seed
	}
	if flags.Changed("min") {
		cfg.Input.Min = minVal
	}
	if flags.Changed("max") {
		cfg.Input.Max = maxVal
	}
	if flags.Changed("swaps") {
		cfg.Input.Swaps = swaps
	}
	if flags.Changed("unique") {
		cfg.Input.Unique = unique
	}
	if flags.Changed("values") {
		cfg.Input.Kind = string(generate.Custom)
		cfg.Input.Values = generate.ParseLiteral(values)
		cfg.Input.Size = len(cfg.Input.Values)
	}
	if flags.Changed("speed") {
		cfg.Playback.Speed = speed
	}
	if flags.Changed("theme") {
		cfg.Playback.Theme = theme
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	cfg.Clamp()
	return cfg, nil
}

func resolveAlgorithm(logger *log.Logger, name string) (algorithms.Descriptor, error) {
	d, err := algorithms.Resolve(algorithms.ID(name))
	if err != nil {
		if !fallback {
			return d, fmt.Errorf("%w (available: %v)", err, algorithms.IDs())
		}
		logger.Warn("unknown algorithm, falling back", "requested", name, "using", d.ID)
	}
	return d, nil
}

func newExperiment(logger *log.Logger, cfg *config.Config) (*experiment.Experiment, error) {
	d, err := resolveAlgorithm(logger, cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	k, err := generate.ParseKind(cfg.Input.Kind)
	if err != nil {
		return nil, err
	}

	exp := experiment.New(experiment.Config{
		Algorithm: d.ID,
		Kind:      k,
		Size:      cfg.Input.Size,
		Seed:      cfg.Input.Seed,
		Params:    cfg.GetParams(),
	})
	if err := exp.Setup(); err != nil {
		return nil, err
	}
	return exp, nil
}

// traceFromFlags builds the configured experiment and runs it once.
func traceFromFlags(cmd *cobra.Command, args []string) (*experiment.Result, *config.Config, error) {
	logger := loggerFromContext(cmd.Context())
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	exp, err := newExperiment(logger, cfg)
	if err != nil {
		return nil, nil, err
	}

	input, err := exp.Input()
	if err != nil {
		return nil, nil, err
	}
	if err := config.CheckValues(input.Values(), config.MaxValue); err != nil {
		return nil, nil, err
	}

	start := time.Now()
	result, err := exp.RunOn(cmd.Context(), input)
	if err != nil {
		return nil, nil, err
	}
	timed(logger, start, "traced", "algorithm", result.Algorithm, "size", len(result.Input), "frames", len(result.Trace))
	return result, cfg, nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	result, cfg, err := traceFromFlags(cmd, args)
	if err != nil {
		return err
	}

	if check {
		requireSorted := result.Algorithm != algorithms.BogoID
		if err := trace.Validate(result.Input, result.Trace, requireSorted); err != nil {
			return fmt.Errorf("trace check failed: %w", err)
		}
		loggerFromContext(cmd.Context()).Info("trace check passed", "frames", len(result.Trace))
	}

	last := result.Trace.Last()
	th := viz.GetTheme(cfg.Playback.Theme)

	fmt.Printf("algorithm: %s\n", result.Algorithm)
	fmt.Printf("input:     %v\n", result.Input.Values())
	fmt.Printf("output:    %v\n", last.Array.Values())
	fmt.Printf("frames:    %d\n", len(result.Trace))
	fmt.Printf("converged: %v\n\n", result.Converged)
	fmt.Println(viz.RenderBars(last.Array, 8, 2, th))
	fmt.Println(viz.Legend(th))

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Printf("  %s: %.2f\n", name, result.Metrics[name])
	}
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTABLE\tAVERAGE\tSPACE")
	for _, d := range algorithms.Catalog() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\t%s\n", d.ID, d.Name, d.Category, d.Stable, d.Time.Average, d.Space)
	}
	return w.Flush()
}

func showInfo(cmd *cobra.Command, args []string) error {
	d, err := algorithms.Lookup(algorithms.ID(args[0]))
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n\n", d.Name, d.ID)
	fmt.Printf("%s\n\n", d.Description)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "type\t%s\n", d.Category)
	fmt.Fprintf(w, "stable\t%v\n", d.Stable)
	fmt.Fprintf(w, "best\t%s\n", d.Time.Best)
	fmt.Fprintf(w, "average\t%s\n", d.Time.Average)
	fmt.Fprintf(w, "worst\t%s\n", d.Time.Worst)
	fmt.Fprintf(w, "space\t%s\n", d.Space)
	if d.NonNegative {
		fmt.Fprintf(w, "input\tnon-negative integers only\n")
	}
	return w.Flush()
}

func generateInput(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Input.Kind = args[0]
	}
	k, err := generate.ParseKind(cfg.Input.Kind)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, generate.Kinds)
	}

	arr, err := generate.New(cfg.Input.Seed).Generate(k, cfg.Input.Size, cfg.GetParams())
	if err != nil {
		return err
	}
	vals := arr.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	fmt.Println(strings.Join(parts, ","))
	return nil
}

func playTrace(cmd *cobra.Command, args []string) error {
	result, cfg, err := traceFromFlags(cmd, args)
	if err != nil {
		return err
	}
	viz.SetTheme(cfg.Playback.Theme)
	return viz.Run(cfg.Playback.Speed, viz.Lane{Name: string(result.Algorithm), Trace: result.Trace})
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	ids := make([]algorithms.ID, 0, len(args))
	for _, name := range args {
		d, err := resolveAlgorithm(logger, name)
		if err != nil {
			return err
		}
		ids = append(ids, d.ID)
	}

	k, err := generate.ParseKind(cfg.Input.Kind)
	if err != nil {
		return err
	}
	input, err := generate.New(cfg.Input.Seed).Generate(k, cfg.Input.Size, cfg.GetParams())
	if err != nil {
		return err
	}
	if err := config.CheckValues(input.Values(), config.MaxValue); err != nil {
		return err
	}

	start := time.Now()
	results, err := experiment.Compare(cmd.Context(), ids, input, cfg.Input.Seed)
	if err != nil {
		return err
	}
	timed(logger, start, "compared", "algorithms", len(ids), "size", len(input))

	fmt.Printf("comparing %d algorithms on %s input (n=%d)\n\n", len(ids), k, len(input))
	fmt.Printf("%-10s  %12s  %12s  %8s  %9s\n", "algorithm", "comparisons", "swaps", "frames", "converged")
	fmt.Println(strings.Repeat("-", 59))

	series := make([][]float64, len(results))
	lanes := make([]viz.Lane, len(results))
	for i, r := range results {
		fmt.Printf("%-10s  %12d  %12d  %8d  %9v\n", r.Algorithm, r.Trace.Comparisons(), r.Trace.Swaps(), len(r.Trace), r.Converged)
		series[i] = comparisonSeries(r.Trace)
		lanes[i] = viz.Lane{Name: string(r.Algorithm), Trace: r.Trace}
	}

	if playLanes {
		viz.SetTheme(cfg.Playback.Theme)
		return viz.Run(cfg.Playback.Speed, lanes...)
	}

	fmt.Println()
	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(seriesColors(len(series))...),
		asciigraph.Caption("comparisons by frame: "+joinIDs(ids)),
	))
	return nil
}

func measureComplexity(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	d, err := algorithms.Lookup(algorithms.ID(args[0]))
	if err != nil {
		return err
	}
	k, err := generate.ParseKind(kind)
	if err != nil {
		return err
	}

	start := time.Now()
	points, err := experiment.Sweep(cmd.Context(), d.ID, k, sizes, seed, workers)
	if err != nil {
		return err
	}
	timed(logger, start, "swept", "algorithm", d.ID, "sizes", len(sizes))

	fmt.Printf("%s on %s input, expected %s average, %s worst\n\n", d.Name, k, d.Time.Average, d.Time.Worst)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tCOMPARISONS\tSWAPS\tFRAMES\tCMP/N")
	cmp := make([]float64, len(points))
	for i, p := range points {
		perN := 0.0
		if p.Size > 0 {
			perN = float64(p.Comparisons) / float64(p.Size)
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.2f\n", p.Size, p.Comparisons, p.Swaps, p.Frames, perN)
		cmp[i] = float64(p.Comparisons)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(cmp) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(cmp,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("comparisons by input size"),
		))
	}
	return nil
}

func plotTrace(cmd *cobra.Command, args []string) error {
	result, _, err := traceFromFlags(cmd, args)
	if err != nil {
		return err
	}

	fmt.Printf("algorithm: %s\n", result.Algorithm)
	fmt.Printf("frames: %d\n\n", len(result.Trace))
	if len(result.Trace) < 2 {
		fmt.Println("nothing to plot")
		return nil
	}

	swp := make([]float64, len(result.Trace))
	for i, f := range result.Trace {
		swp[i] = float64(f.Swaps)
	}

	for _, p := range []struct {
		caption string
		data    []float64
	}{
		{"comparisons", comparisonSeries(result.Trace)},
		{"swaps", swp},
	} {
		fmt.Println(asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		))
		fmt.Println()
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	result, _, err := traceFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if outPath == "" {
		return export.ExportJSONStdout(result)
	}
	if err := export.ExportJSON(outPath, result); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("exported", "path", outPath, "frames", len(result.Trace))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	result, _, err := traceFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if outPath == "" {
		return export.WriteCSV(os.Stdout, result.Trace)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(f, result.Trace); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("exported", "path", outPath, "frames", len(result.Trace))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	result, _, err := traceFromFlags(cmd, args)
	if err != nil {
		return err
	}

	counters, _ := cmd.Flags().GetBool("counters")
	var svg string
	if counters {
		svg = export.CountersToSVG(result.Trace, svgWidth, svgHeight)
	} else {
		i := frameIdx
		if i < 0 {
			i += len(result.Trace)
		}
		if i < 0 || i >= len(result.Trace) {
			return fmt.Errorf("frame %d out of range [0, %d)", frameIdx, len(result.Trace))
		}
		svg = export.FrameToSVG(result.Trace[i], svgWidth, svgHeight)
	}

	if outPath == "" {
		_, err := fmt.Print(svg)
		return err
	}
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("exported", "path", outPath)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	results, err := automation.RunScenario(cmd.Context(), sc, outDir, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tALGORITHM\tN\tCOMPARISONS\tSWAPS\tFRAMES")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\n", i+1, r.Algorithm, len(r.Input), r.Trace.Comparisons(), r.Trace.Swaps(), len(r.Trace))
	}
	return w.Flush()
}

func runTrials(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	d, err := resolveAlgorithm(logger, cfg.Algorithm)
	if err != nil {
		return err
	}
	k, err := generate.ParseKind(cfg.Input.Kind)
	if err != nil {
		return err
	}

	seedBase := cfg.Input.Seed
	if seedBase == 0 {
		seedBase = time.Now().UnixNano()
	}
	results, err := automation.RunTrials(cmd.Context(), automation.TrialConfig{
		Algorithm: d.ID,
		Kind:      k,
		Size:      cfg.Input.Size,
		NumTrials: numTrials,
		Seed:      seedBase,
	}, logger)
	if err != nil {
		return err
	}

	s := automation.Stats(results)
	fmt.Printf("%s over %d trials (%s, n=%d)\n", d.Name, s.Trials, k, cfg.Input.Size)
	fmt.Printf("  converged:   %d/%d\n", s.Converged, s.Trials)
	fmt.Printf("  comparisons: min %d, max %d, mean %.1f\n", s.MinComparisons, s.MaxComparisons, s.MeanComparisons)
	fmt.Printf("  swaps:       mean %.1f\n", s.MeanSwaps)
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Server, logger).ListenAndServe(ctx)
}

func comparisonSeries(t trace.Trace) []float64 {
	data := make([]float64, len(t))
	for i, f := range t {
		data[i] = float64(f.Comparisons)
	}
	return data
}

func seriesColors(n int) []asciigraph.AnsiColor {
	palette := []asciigraph.AnsiColor{asciigraph.Blue, asciigraph.Red, asciigraph.Green, asciigraph.Yellow, asciigraph.Magenta, asciigraph.Cyan}
	colors := make([]asciigraph.AnsiColor, n)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}

func joinIDs(ids []algorithms.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
