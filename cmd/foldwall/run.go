package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/foldwall/internal/config"
	"github.com/san-kum/foldwall/internal/experiment"
	"github.com/san-kum/foldwall/internal/gui"
	"github.com/san-kum/foldwall/internal/logger"
	"github.com/san-kum/foldwall/internal/metrics"
	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/storage"
	"github.com/san-kum/foldwall/internal/tui"
	"github.com/san-kum/foldwall/internal/viz"
	"github.com/san-kum/foldwall/internal/wall"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.Named("run")

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(cfg, nil)
	if err := exp.Setup(metricSet); err != nil {
		return err
	}

	if watch {
		renderer := tui.NewPlanRenderer(os.Stdout, 30, true)
		exp.GetSimulator().AddObserver(renderer)
		renderer.Start()
		defer renderer.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	name := displayName("run")
	log.Info("starting run",
		zap.String("name", name),
		zap.String("wall", cfg.WallConfig().String()),
		zap.String("pointer", cfg.Run.Pointer.Mode))

	start := time.Now()
	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(name, cfg.Run.Pointer.Mode, cfg.SimConfig(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d (%d recorded)\n", result.FramesTaken, len(result.States))
	printMetrics(result.Metrics)
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("theme") && cfg.View.Theme != "" {
		theme = cfg.View.Theme
	}

	w, err := wall.New(cfg.WallConfig())
	if err != nil {
		return err
	}
	w.SetWorkers(cfg.Run.Workers)
	return viz.Run(w, cfg.Run.FPS, displayName("live"), theme)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Texture.Paths = append(cfg.Texture.Paths, textures...)
	return gui.Run(cfg)
}

func printLayout(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	wc := cfg.WallConfig()

	fmt.Printf("wall: %s\n\n", wc)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tDIR\tCENTER_X\tLEFT\tRIGHT\tWIDTH\tU_OFFSET\tU_REPEAT")
	for _, l := range wall.Generate(wc) {
		fmt.Fprintf(w, "%d\t%+.0f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			l.Index, wall.Direction(l.Index), l.FlatCenterX, l.Left(), l.Right(), l.Width,
			l.TextureOffsetU, l.TextureRepeatU)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTRIPS\tSIZE\tMAX_FOLD\tFPS\tPOINTER")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%gx%g\t%.1f°\t%d\t%s\n",
			name, p.Wall.Strips, p.Wall.Width, p.Wall.Height,
			p.Wall.MaxFoldAngle*180/math.Pi, p.Run.FPS, p.Run.Pointer.Mode)
	}
	return w.Flush()
}

func benchWall(cmd *cobra.Command, args []string) error {
	stripCounts := []int{24, 96, 384, 1536}
	workerCounts := []int{1, 4, runtime.NumCPU()}

	fmt.Printf("benchmarking %.1fs at %d fps per case\n\n", duration, config.DefaultFPS)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STRIPS\tWORKERS\tFRAMES\tTIME\tFRAMES/SEC\tSTRIPS/SEC")

	for _, n := range stripCounts {
		for _, nw := range workerCounts {
			cfg := config.DefaultConfig()
			cfg.Wall.Strips = n
			cfg.Run.Duration = duration
			cfg.Run.Workers = nw
			cfg.Run.RecordEvery = cfg.SimConfig().Frames() + 1

			exp := experiment.New(cfg, nil)
			if err := exp.Setup("geometry"); err != nil {
				return err
			}

			start := time.Now()
			result, err := exp.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			perSec := float64(result.FramesTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\t%.0f\n",
				n, nw, result.FramesTaken, elapsed.Round(time.Microsecond), perSec, perSec*float64(n))
		}
	}

	return w.Flush()
}

// stripsAt rebuilds renderable strips from a recorded frame.
func stripsAt(cfg wall.Config, states []wall.StripState) []wall.Strip {
	layouts := wall.Generate(cfg)
	out := make([]wall.Strip, 0, len(layouts))
	for i, l := range layouts {
		if i >= len(states) {
			break
		}
		out = append(out, wall.Strip{
			Index:      l.Index,
			Width:      l.Width,
			Height:     l.Height,
			OffsetU:    l.TextureOffsetU,
			RepeatU:    l.TextureRepeatU,
			StripState: states[i],
		})
	}
	return out
}

// recordedSeam evaluates the seam of one recorded frame.
func recordedSeam(cfg wall.Config, states []wall.StripState) float64 {
	return metrics.MaxSeam(sim.Frame{Config: cfg, Layouts: wall.Generate(cfg), States: states})
}
