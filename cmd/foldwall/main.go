package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/foldwall/internal/config"
	"github.com/san-kum/foldwall/internal/gui"
	"github.com/san-kum/foldwall/internal/input"
	"github.com/san-kum/foldwall/internal/logger"
)

var (
	dataDir  string
	logLevel string
	logFile  string

	configFile string
	preset     string

	strips     int
	width      float64
	height     float64
	maxFoldDeg float64

	fps         int
	duration    float64
	workers     int
	recordEvery int
	metricSet   string

	pointerMode string
	pointerX    float64
	pointerY    float64
	amplitude   float64
	radius      float64
	period      float64
	keyframes   string

	runName string
	watch   bool

	theme    string
	textures []string

	strip     int
	frame     int
	outFile   string
	svgKind   string
	svgWidth  int
	svgHeight int

	paramName string
	paramMin  float64
	paramMax  float64
	numSteps  int
	gridExpr  string
	metric    string
	maximize  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "foldwall",
		Short: "accordion-folding image wall",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logLevel, logFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand opens the window with the default wall
			return gui.Run(config.DefaultConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".foldwall", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and save it",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)
	addWallFlags(runCmd)
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&runName, "name", "", "run name (defaults to the preset or \"run\")")
	runCmd.Flags().BoolVar(&watch, "watch", false, "draw a plan view while running")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a run frame or rotation traces to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgKind, "kind", "frame", "frame, wireframe or traces")
	exportSVGCmd.Flags().IntVar(&frame, "frame", -1, "recorded frame to draw (-1 is the last)")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (stdout if empty)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 960, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 540, "image height")
	exportSVGCmd.Flags().StringSliceVar(&textures, "texture", nil, "texture used to colour strips")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency and response analysis of one strip",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&strip, "strip", 0, "strip index")

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "print the flat strip layout",
		Args:  cobra.NoArgs,
		RunE:  printLayout,
	}
	addConfigFlags(layoutCmd)
	addWallFlags(layoutCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)
	addWallFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the wall in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addConfigFlags(guiCmd)
	addWallFlags(guiCmd)
	guiCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "ticks per second")
	guiCmd.Flags().StringSliceVar(&textures, "texture", nil, "image files to choose from")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark wall updates across strip counts and workers",
		Args:  cobra.NoArgs,
		RunE:  benchWall,
	}
	benchCmd.Flags().Float64Var(&duration, "time", 5, "simulated seconds per case")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one wall parameter",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addConfigFlags(sweepCmd)
	addWallFlags(sweepCmd)
	addRunFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&paramName, "param", "max_fold_angle", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&paramMin, "min", 0.2, "first value")
	sweepCmd.Flags().Float64Var(&paramMax, "max", 1.2, "last value")
	sweepCmd.Flags().IntVar(&numSteps, "steps", 6, "number of values")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search wall parameters for the best metric",
		Args:  cobra.NoArgs,
		RunE:  runTune,
	}
	addConfigFlags(tuneCmd)
	addWallFlags(tuneCmd)
	addRunFlags(tuneCmd)
	tuneCmd.Flags().StringVar(&gridExpr, "grid", "max_fold_angle=0.3:1.2:4", "param=min:max:steps[,param=...]")
	tuneCmd.Flags().StringVar(&metric, "metric", "seam_gap", "metric to optimise")
	tuneCmd.Flags().BoolVar(&maximize, "maximize", false, "prefer the largest value")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd,
		analyzeCmd, layoutCmd, liveCmd, guiCmd, presetsCmd, benchCmd, scenarioCmd, sweepCmd, tuneCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addWallFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&strips, "strips", config.DefaultStrips, "number of strips")
	cmd.Flags().Float64Var(&width, "wall-width", config.DefaultWidth, "wall width")
	cmd.Flags().Float64Var(&height, "wall-height", config.DefaultHeight, "wall height")
	cmd.Flags().Float64Var(&maxFoldDeg, "max-fold", config.DefaultMaxFoldAngle*180/math.Pi, "maximum fold angle in degrees")
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per simulated second")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in seconds")
	cmd.Flags().IntVar(&workers, "workers", 1, "parallel strip workers")
	cmd.Flags().IntVar(&recordEvery, "record-every", 1, "keep one frame in N")
	cmd.Flags().StringVar(&metricSet, "metrics", "all", "metric set")
	cmd.Flags().StringVar(&pointerMode, "pointer", config.DefaultPointer, "pointer source (keyframes, orbit, static, sweep)")
	cmd.Flags().Float64Var(&pointerX, "pointer-x", 0, "static pointer x")
	cmd.Flags().Float64Var(&pointerY, "pointer-y", 0, "static pointer y")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1, "sweep amplitude")
	cmd.Flags().Float64Var(&radius, "radius", 0.8, "orbit radius")
	cmd.Flags().Float64Var(&period, "period", 6, "sweep or orbit period in seconds")
	cmd.Flags().StringVar(&keyframes, "keyframes", "", "keyframe file (implies --pointer keyframes)")
}

// buildConfig layers defaults, preset, config file and explicitly set flags
// in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
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
	if configFile != "" && !flags.Changed("log-level") && !flags.Changed("log-file") {
		if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
			return nil, err
		}
	}
	if flags.Changed("strips") {
		cfg.Wall.Strips = strips
	}
	if flags.Changed("wall-width") {
		cfg.Wall.Width = width
	}
	if flags.Changed("wall-height") {
		cfg.Wall.Height = height
	}
	if flags.Changed("max-fold") {
		cfg.Wall.MaxFoldAngle = maxFoldDeg * math.Pi / 180
	}
	if flags.Changed("fps") {
		cfg.Run.FPS = fps
	}
	if flags.Changed("time") {
		cfg.Run.Duration = duration
	}
	if flags.Changed("workers") {
		cfg.Run.Workers = workers
	}
	if flags.Changed("record-every") {
		cfg.Run.RecordEvery = recordEvery
	}

	p := &cfg.Run.Pointer
	if flags.Changed("pointer") {
		p.Mode = pointerMode
	}
	if flags.Changed("pointer-x") {
		p.X = pointerX
	}
	if flags.Changed("pointer-y") {
		p.Y = pointerY
	}
	if flags.Changed("amplitude") {
		p.Amplitude = amplitude
	}
	if flags.Changed("radius") {
		p.Radius = radius
	}
	if flags.Changed("period") {
		p.Period = period
	}
	if keyframes != "" {
		k, err := input.LoadKeyframes(keyframes)
		if err != nil {
			return nil, fmt.Errorf("failed to load keyframes: %w", err)
		}
		p.Mode = "keyframes"
		p.Keyframes = k.Frames
		p.Loop = k.Loop
	}

	return cfg, cfg.Validate()
}

func displayName(fallback string) string {
	switch {
	case runName != "":
		return runName
	case preset != "":
		return preset
	default:
		return fallback
	}
}
