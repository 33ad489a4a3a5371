package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/wall"
)

type ExportData struct {
	Name    string              `json:"name"`
	Strips  int                 `json:"strips"`
	Width   float64             `json:"width"`
	Height  float64             `json:"height"`
	MaxFold float64             `json:"max_fold_angle"`
	Frames  int                 `json:"frames"`
	Times   []float64           `json:"times"`
	Pointer [][2]float64        `json:"pointer"`
	States  [][]wall.StripState `json:"states"`
	Metrics map[string]float64  `json:"metrics"`
}

func ExportJSON(w io.Writer, name string, result *sim.Result) error {
	data := ExportData{
		Name:    name,
		Strips:  result.Config.StripCount,
		Width:   result.Config.Width,
		Height:  result.Config.Height,
		MaxFold: result.Config.MaxFoldAngle,
		Frames:  result.FramesTaken,
		Times:   result.Times,
		Pointer: make([][2]float64, len(result.Inputs)),
		States:  result.States,
		Metrics: result.Metrics,
	}
	for i, in := range result.Inputs {
		data.Pointer[i] = [2]float64{in.PointerX, in.PointerY}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
