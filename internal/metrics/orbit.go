package metrics

import "math"

// EnergyDrift tracks the largest relative deviation of total energy
// from its first observed value.
type EnergyDrift struct {
	initial float64
	current float64
	max     float64
	samples int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Observe(energy float64) {
	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.max = math.Max(e.max, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.max }

func (e *EnergyDrift) Current() float64 { return e.current }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.current = 0
	e.max = 0
	e.samples = 0
}

// RadialRange tracks the spread of a planet's distance from the
// primary body. A small spread relative to the mean indicates a
// near-circular orbit.
type RadialRange struct {
	min     float64
	max     float64
	sum     float64
	samples int
}

func NewRadialRange() *RadialRange {
	return &RadialRange{min: math.Inf(1), max: math.Inf(-1)}
}

func (r *RadialRange) Observe(distance float64) {
	r.min = math.Min(r.min, distance)
	r.max = math.Max(r.max, distance)
	r.sum += distance
	r.samples++
}

func (r *RadialRange) Min() float64 {
	if r.samples == 0 {
		return 0
	}
	return r.min
}

func (r *RadialRange) Max() float64 {
	if r.samples == 0 {
		return 0
	}
	return r.max
}

func (r *RadialRange) Mean() float64 {
	if r.samples == 0 {
		return 0
	}
	return r.sum / float64(r.samples)
}

// Spread is the min-to-max width normalized by the mean distance.
func (r *RadialRange) Spread() float64 {
	mean := r.Mean()
	if mean == 0 {
		return 0
	}
	return (r.max - r.min) / mean
}

func (r *RadialRange) Reset() {
	r.min = math.Inf(1)
	r.max = math.Inf(-1)
	r.sum = 0
	r.samples = 0
}
