package sim

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/solarsim/internal/physics"
)

// PlanetState is the per-planet record reported each tick.
type PlanetState struct {
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Distance float64 `json:"distance"`
}

// Reporter receives each tick's state. Report is fire-and-forget: sinks
// latch their own write errors and surface them on Flush, which runs
// once after the final tick.
type Reporter interface {
	Report(tick int, states []PlanetState)
	Flush() error
}

// TextReporter writes one line per planet per tick:
//
//	<name>: x=<x>, y=<y>, distance=<distance>
//
// with every value at two decimal places.
type TextReporter struct {
	w io.Writer
}

func NewTextReporter(w io.Writer) *TextReporter { return &TextReporter{w: w} }

func (r *TextReporter) Report(tick int, states []PlanetState) {
	for _, st := range states {
		fmt.Fprintf(r.w, "%s: x=%.2f, y=%.2f, distance=%.2f\n", st.Name, st.X, st.Y, st.Distance)
	}
}

func (r *TextReporter) Flush() error { return nil }

// CSVReporter writes tick,name,x,y,distance rows with a single header.
type CSVReporter struct {
	w      *csv.Writer
	header bool
}

func NewCSVReporter(w io.Writer) *CSVReporter {
	return &CSVReporter{w: csv.NewWriter(w)}
}

func (r *CSVReporter) Report(tick int, states []PlanetState) {
	if !r.header {
		r.w.Write([]string{"tick", "name", "x", "y", "distance"})
		r.header = true
	}
	for _, st := range states {
		r.w.Write([]string{
			strconv.Itoa(tick),
			st.Name,
			strconv.FormatFloat(st.X, 'f', 6, 64),
			strconv.FormatFloat(st.Y, 'f', 6, 64),
			strconv.FormatFloat(st.Distance, 'f', 6, 64),
		})
	}
}

func (r *CSVReporter) Flush() error {
	r.w.Flush()
	return r.w.Error()
}

type tickRecord struct {
	Tick    int           `json:"tick"`
	Planets []PlanetState `json:"planets"`
}

type jsonExport struct {
	Dt    float64      `json:"dt"`
	Steps int          `json:"steps"`
	Ticks []tickRecord `json:"ticks"`
}

// JSONReporter buffers every tick and emits a single indented document
// on Flush.
type JSONReporter struct {
	w     io.Writer
	ticks []tickRecord
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w, ticks: make([]tickRecord, 0)}
}

func (r *JSONReporter) Report(tick int, states []PlanetState) {
	planets := make([]PlanetState, len(states))
	copy(planets, states)
	r.ticks = append(r.ticks, tickRecord{Tick: tick, Planets: planets})
}

func (r *JSONReporter) Flush() error {
	data := jsonExport{
		Dt:    physics.Dt,
		Steps: len(r.ticks),
		Ticks: r.ticks,
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
