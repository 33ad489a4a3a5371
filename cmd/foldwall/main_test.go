package main

import (
	"math"
	"testing"

	"github.com/spf13/cobra"
)

func newTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	preset, configFile, keyframes = "", "", ""
	cmd := &cobra.Command{Use: "test"}
	addConfigFlags(cmd)
	addWallFlags(cmd)
	addRunFlags(cmd)
	return cmd
}

func TestBuildConfig_Defaults(t *testing.T) {
	cfg, err := buildConfig(newTestCmd(t))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Wall.Strips != 24 || cfg.Run.Pointer.Mode != "sweep" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestBuildConfig_FlagsOverridePreset(t *testing.T) {
	cmd := newTestCmd(t)
	if err := cmd.Flags().Set("preset", "dense"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("max-fold", "45"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("pointer", "static"); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Wall.Strips != 96 {
		t.Errorf("preset strips lost: %d", cfg.Wall.Strips)
	}
	if math.Abs(cfg.Wall.MaxFoldAngle-math.Pi/4) > 1e-12 {
		t.Errorf("max fold = %v, want pi/4", cfg.Wall.MaxFoldAngle)
	}
	if cfg.Run.Pointer.Mode != "static" {
		t.Errorf("pointer = %s", cfg.Run.Pointer.Mode)
	}
}

func TestBuildConfig_Invalid(t *testing.T) {
	cmd := newTestCmd(t)
	if err := cmd.Flags().Set("strips", "0"); err != nil {
		t.Fatal(err)
	}
	if _, err := buildConfig(cmd); err == nil {
		t.Error("expected validation error")
	}

	cmd = newTestCmd(t)
	if err := cmd.Flags().Set("preset", "nope"); err != nil {
		t.Fatal(err)
	}
	if _, err := buildConfig(cmd); err == nil {
		t.Error("expected unknown preset error")
	}
}

func TestParseGrid(t *testing.T) {
	names, ranges, err := parseGrid("max_fold_angle=0.5:1.5:3, strips=8:16:2")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[1] != "strips" {
		t.Fatalf("names = %v", names)
	}
	if len(ranges[0]) != 3 || ranges[0][1] != 1.0 {
		t.Errorf("fold range = %v", ranges[0])
	}
	if len(ranges[1]) != 2 || ranges[1][1] != 16 {
		t.Errorf("strips range = %v", ranges[1])
	}

	for _, bad := range []string{"", "strips", "strips=1:2", "strips=a:2:3"} {
		if _, _, err := parseGrid(bad); err == nil {
			t.Errorf("parseGrid(%q) should fail", bad)
		}
	}
}

func TestPlotStrips(t *testing.T) {
	cases := map[int][]int{1: {0}, 2: {0, 1}, 24: {0, 12, 23}}
	for n, want := range cases {
		got := plotStrips(n)
		if len(got) != len(want) {
			t.Errorf("plotStrips(%d) = %v, want %v", n, got, want)
			continue
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("plotStrips(%d) = %v, want %v", n, got, want)
			}
		}
	}
}
