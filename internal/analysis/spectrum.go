package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of each frequency bin of the
// series up to the Nyquist limit. The transform accepts any sample
// count; no power-of-two padding is applied.
func PowerSpectrum(series []float64) []float64 {
	spectrum := fft.FFTReal(series)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}
