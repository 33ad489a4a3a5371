package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/wall"
)

const (
	leadColumns  = 3 // time, px, py
	stripColumns = 4 // rot, x, z, tilt
)

func FramesHeader(strips int) []string {
	header := []string{"time", "px", "py"}
	for i := 0; i < strips; i++ {
		header = append(header,
			fmt.Sprintf("rot%d", i),
			fmt.Sprintf("x%d", i),
			fmt.Sprintf("z%d", i),
			fmt.Sprintf("tilt%d", i))
	}
	return header
}

// WriteFrames writes one CSV row per recorded frame.
func WriteFrames(out io.Writer, result *sim.Result) error {
	w := csv.NewWriter(out)

	strips := result.Config.StripCount
	if len(result.States) > 0 {
		strips = len(result.States[0])
	}
	if err := w.Write(FramesHeader(strips)); err != nil {
		return err
	}

	row := make([]string, 0, leadColumns+strips*stripColumns)
	for i := range result.States {
		row = row[:0]
		var in wall.InputSample
		if i < len(result.Inputs) {
			in = result.Inputs[i]
		}
		t := in.Elapsed
		if i < len(result.Times) {
			t = result.Times[i]
		}
		row = append(row, formatFloat(t), formatFloat(in.PointerX), formatFloat(in.PointerY))
		for _, st := range result.States[i] {
			row = append(row,
				formatFloat(st.RotationY),
				formatFloat(st.PositionX),
				formatFloat(st.PositionZ),
				formatFloat(st.TiltX))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ReadFrames parses what WriteFrames produced. Only Times, Inputs and
// States are filled in.
func ReadFrames(in io.Reader) (*sim.Result, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	result := &sim.Result{
		Times:   []float64{},
		Inputs:  []wall.InputSample{},
		States:  [][]wall.StripState{},
		Metrics: map[string]float64{},
	}
	if len(records) < 2 {
		return result, nil
	}

	header := records[0]
	if len(header) < leadColumns || (len(header)-leadColumns)%stripColumns != 0 {
		return nil, fmt.Errorf("malformed header with %d columns", len(header))
	}
	strips := (len(header) - leadColumns) / stripColumns
	result.Config.StripCount = strips

	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+1, len(header), len(record))
		}
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", i+1, header[j], err)
			}
			vals[j] = v
		}

		result.Times = append(result.Times, vals[0])
		result.Inputs = append(result.Inputs, wall.InputSample{PointerX: vals[1], PointerY: vals[2], Elapsed: vals[0]})
		states := make([]wall.StripState, strips)
		for k := range states {
			base := leadColumns + k*stripColumns
			states[k] = wall.StripState{
				RotationY: vals[base],
				PositionX: vals[base+1],
				PositionZ: vals[base+2],
				TiltX:     vals[base+3],
			}
		}
		result.States = append(result.States, states)
	}

	return result, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
