package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/foldwall/internal/automation"
	"github.com/san-kum/foldwall/internal/experiment"
	"github.com/san-kum/foldwall/internal/optim"
	"github.com/san-kum/foldwall/internal/storage"
)

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("scenario: %s (%d steps)\n", scenario.Name, len(scenario.Steps))
	if scenario.Description != "" {
		fmt.Println(scenario.Description)
	}
	fmt.Println()

	results, err := automation.RunScenario(ctx, scenario, experiment.NewRegistry(), st)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tRUN ID\tFRAMES\tSEAM\tFOLD")
	for _, r := range results {
		runID := r.RunID
		if runID == "" {
			runID = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			r.Name, runID, r.Result.FramesTaken,
			metricCell(r.Result.Metrics, "seam_gap"),
			metricCell(r.Result.Metrics, "fold_amplitude"))
	}
	return w.Flush()
}

func metricCell(m map[string]float64, name string) string {
	v, ok := m[name]
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 5, 64)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	sweep := &automation.ParameterSweep{
		Base:      cfg,
		ParamName: paramName,
		ParamMin:  paramMin,
		ParamMax:  paramMax,
		NumSteps:  numSteps,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunSweep(ctx, sweep, experiment.NewRegistry())
	if err != nil {
		return err
	}

	fmt.Printf("sweep %s over [%g, %g]\n\n", paramName, paramMin, paramMax)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tSEAM\tFOLD\tTRACKING\tDEPTH")
	for _, r := range results {
		fmt.Fprintf(w, "%.4f\t%.6f\t%.4f\t%s\t%s\n",
			r.ParamValue, r.SeamGap, r.FoldAmplitude,
			metricCell(r.Metrics, "tracking_error"),
			metricCell(r.Metrics, "depth_spread"))
	}
	return w.Flush()
}

// parseGrid reads "name=min:max:steps" entries separated by commas.
func parseGrid(expr string) ([]string, [][]float64, error) {
	var names []string
	var ranges [][]float64
	for _, entry := range strings.Split(expr, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, rng, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, nil, fmt.Errorf("bad grid entry %q: want name=min:max:steps", entry)
		}
		parts := strings.Split(rng, ":")
		if len(parts) != 3 {
			return nil, nil, fmt.Errorf("bad grid range %q: want min:max:steps", rng)
		}
		lo, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, nil, err
		}
		hi, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, nil, err
		}
		steps, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, nil, err
		}
		sweep := automation.ParameterSweep{ParamMin: lo, ParamMax: hi, NumSteps: steps}
		names = append(names, strings.TrimSpace(name))
		ranges = append(ranges, sweep.Values())
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("empty grid")
	}
	return names, ranges, nil
}

func runTune(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	names, ranges, err := parseGrid(gridExpr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := optim.NewGridSearch(names, ranges, automation.ApplyParam)
	best, tried, err := g.Search(ctx, cfg, metric, maximize)
	if err != nil {
		return err
	}

	fmt.Printf("evaluated %d combinations\n", tried)
	fmt.Printf("best %s: %.6f\n", metric, best.Value)
	keys := make([]string, 0, len(best.Params))
	for k := range best.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s = %g\n", k, best.Params[k])
	}
	return nil
}
