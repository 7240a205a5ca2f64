package sim

// HistoryReporter accumulates per-planet distance series in memory so
// a finished run can be plotted. Names keeps first-seen order.
type HistoryReporter struct {
	names     []string
	distances map[string][]float64
}

func NewHistoryReporter() *HistoryReporter {
	return &HistoryReporter{distances: make(map[string][]float64)}
}

func (r *HistoryReporter) Report(tick int, states []PlanetState) {
	for _, st := range states {
		if _, ok := r.distances[st.Name]; !ok {
			r.names = append(r.names, st.Name)
		}
		r.distances[st.Name] = append(r.distances[st.Name], st.Distance)
	}
}

func (r *HistoryReporter) Flush() error { return nil }

func (r *HistoryReporter) Names() []string { return r.names }

func (r *HistoryReporter) Distances(name string) []float64 { return r.distances[name] }
