package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/foldwall/internal/analysis"
	"github.com/san-kum/foldwall/internal/export"
	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/storage"
	"github.com/san-kum/foldwall/internal/texture"
	"github.com/san-kum/foldwall/internal/wall"
)

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
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSTRIPS\tMAX_FOLD\tDURATION\tFPS\tPOINTER")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f°\t%.2fs\t%d\t%s\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Strips,
			run.MaxFoldAngle*180/math.Pi,
			run.Duration,
			run.FPS,
			run.Pointer,
		)
	}

	return w.Flush()
}

// loadRun reads a stored run's metadata and recorded frames.
func loadRun(runID string) (*storage.RunMetadata, *sim.Result, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	result, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(result.States) == 0 {
		return nil, nil, fmt.Errorf("run %s has no recorded frames", runID)
	}
	result.Config = meta.WallConfig()
	result.Metrics = meta.Metrics
	result.FramesTaken = meta.Frames
	return meta, result, nil
}

// plotStrips picks the first, middle and last strip.
func plotStrips(n int) []int {
	out := []int{0}
	if n > 2 {
		out = append(out, n/2)
	}
	if n > 1 {
		out = append(out, n-1)
	}
	return out
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, result, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("wall: %s\n", meta.WallConfig())
	fmt.Printf("samples: %d\n\n", len(result.States))

	pointer := make([]float64, len(result.Inputs))
	for i, in := range result.Inputs {
		pointer[i] = in.PointerX
	}
	fmt.Println(asciigraph.Plot(pointer,
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.LowerBound(-1),
		asciigraph.UpperBound(1),
		asciigraph.Caption("pointer x"),
	))
	fmt.Println()

	for _, idx := range plotStrips(meta.Strips) {
		data := result.Series(idx, sim.RotationY)
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.LowerBound(-meta.MaxFoldAngle),
			asciigraph.UpperBound(meta.MaxFoldAngle),
			asciigraph.Caption(fmt.Sprintf("strip %d rotation (rad)", idx)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// exportCSV streams the stored frames file as written.
func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if _, err := st.Load(args[0]); err != nil {
		return err
	}

	f, err := os.Open(st.FramesPath(args[0]))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(os.Stdout, f)
	return err
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, result, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta.Name, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, result, err := loadRun(args[0])
	if err != nil {
		return err
	}
	cfg := meta.WallConfig()

	idx := frame
	if idx < 0 || idx >= len(result.States) {
		idx = len(result.States) - 1
	}
	states := result.States[idx]

	var svg string
	switch svgKind {
	case "frame":
		var tex *texture.Texture
		if len(textures) > 0 {
			tex, err = texture.Load(textures[0])
			if err != nil {
				return err
			}
		}
		sheet := texture.NewSheet(tex, wall.Generate(cfg))
		svg = export.FrameToSVG(cfg, stripsAt(cfg, states), sheet.MeanColors(), svgWidth, svgHeight)
	case "wireframe":
		svg = export.WireframeToSVG(cfg, stripsAt(cfg, states), svgWidth/8, svgHeight/16, 4)
	case "traces":
		svg = export.TrajectoryToSVG(export.RotationTraces(result.Times, result.States, plotStrips(meta.Strips)), svgWidth, svgHeight)
	default:
		return fmt.Errorf("unknown svg kind: %s (available: frame, wireframe, traces)", svgKind)
	}

	var out io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if _, err := io.WriteString(out, svg); err != nil {
		return err
	}
	if outFile != "" {
		fmt.Printf("wrote %s (frame %d, t=%.3fs, seam %.5f)\n", outFile, idx, result.Times[idx], recordedSeam(cfg, states))
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, result, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if strip < 0 || strip >= meta.Strips {
		return fmt.Errorf("strip %d out of range [0, %d)", strip, meta.Strips)
	}

	data := result.Series(strip, sim.RotationY)
	times := result.Times
	if len(data) < 16 {
		return fmt.Errorf("not enough samples to analyze")
	}
	sampleRate := float64(len(times)-1) / (times[len(times)-1] - times[0])

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("strip: %d\n\n", strip)

	ps := analysis.PowerSpectrum(data)
	plotData := ps[1 : len(ps)/4+1]
	fmt.Println(asciigraph.Plot(plotData,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (rotation)"),
	))
	fmt.Println()

	freq := analysis.DominantFrequency(data, sampleRate)
	fmt.Printf("dominant frequency: %.4f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	fmt.Printf("settling time (±0.01 rad): %.3f s\n", analysis.SettlingTime(times, data, 0.01))
	fmt.Printf("final seam: %.6f\n\n", recordedSeam(meta.WallConfig(), result.States[len(result.States)-1]))

	fmt.Println("pointer x vs rotation:")
	fmt.Println(analysis.PortraitToASCII(analysis.Portrait(result, strip), 70, 20))
	return nil
}
