package analysis

// DominantPeriod estimates the strongest cycle length in a uniformly
// sampled series, in samples. The mean is removed first so the zero
// frequency bin does not mask the orbital line. The second return is
// false when the series is too short or has no clear peak.
func DominantPeriod(series []float64) (float64, bool) {
	if len(series) < 4 {
		return 0, false
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	centered := make([]float64, len(series))
	for i, v := range series {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)
	peak, peakIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > peak {
			peak, peakIdx = ps[i], i
		}
	}
	if peakIdx == 0 || peak == 0 {
		return 0, false
	}

	return float64(len(series)) / float64(peakIdx), true
}
