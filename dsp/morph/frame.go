package morph

import "math"

// point is one bin of a short-time spectrum: its complex amplitude, its
// nominal (bin-centre) frequency, and — for the reassignment engine only —
// the reassigned time and frequency derived from the ratios of three
// parallel transforms of the same analysis frame (Auger & Flandrin 1995).
//
// A point lives for exactly one hop and is never exposed outside the
// package.
type point struct {
	value complex128
	freq  float64
	freqR float64
	timeR float64
}

// buildPoints extracts nominal-frequency spectral points from a plain
// spectrum, for the CDF engine's non-reassigned bins [0, N).
func buildPoints(dst []point, spectrum []complex128, sampleRate float64, fftLen int) {
	for i := range dst {
		dst[i] = point{
			value: spectrum[i],
			freq:  binFreqHz(i, fftLen, sampleRate),
		}
	}
}

// binFreqHz returns the nominal centre frequency, in Hz, of FFT bin i for a
// transform of length fftLen at sampleRate.
func binFreqHz(i, fftLen int, sampleRate float64) float64 {
	return float64(i) * sampleRate / float64(fftLen)
}

// buildReassignedPoints fills dst with reassigned spectral points: freq_r
// is corrected by the imaginary ratio of the derivative-weighted to plain
// transform, time_r by the real ratio of the time-weighted to plain
// transform (Auger & Flandrin). Bins with negligible magnitude fall back
// to their nominal frequency and zero reassigned time, treating a silent
// bin as carrying no reassignment signal.
func buildReassignedPoints(dst []point, plain, timeW, dervW []complex128, sampleRate float64, fftLen int) {
	const magFloor = 1e-10

	for i := range dst {
		x := plain[i]
		freq := binFreqHz(i, fftLen, sampleRate)

		mag := math.Hypot(real(x), imag(x))
		if mag <= magFloor {
			dst[i] = point{value: x, freq: freq, freqR: freq, timeR: 0}
			continue
		}

		xt := timeW[i]
		xd := dervW[i]

		ratioD := xd / x
		ratioT := xt / x

		freqR := freq - imag(ratioD)/(2*math.Pi)
		timeR := real(ratioT)

		if !isFiniteFloat(freqR) {
			freqR = freq
		}
		if !isFiniteFloat(timeR) {
			timeR = 0
		}

		dst[i] = point{value: x, freq: freq, freqR: freqR, timeR: timeR}
	}
}

func isFiniteFloat(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
