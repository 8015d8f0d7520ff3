package window

import "math"

// TimeWeighted returns a Hann window multiplied by each sample's signed time
// offset from the window center, in seconds. Together with [Derivative] it
// forms the window pair used by spectral-reassignment analysis to estimate,
// for each FFT bin, the true time and frequency of the energy that landed
// in that bin (Auger & Flandrin 1995).
//
// length must match the plain Hann window it is paired with; sampleRate
// converts the centered sample index into seconds.
func TimeWeighted(length int, sampleRate float64) []float64 {
	if length <= 0 || sampleRate <= 0 {
		return nil
	}

	out := make([]float64, length)
	center := float64(length-1) / 2
	omega := 2 * math.Pi / float64(length-1)

	for i := range out {
		n := float64(i) - center
		w := 0.5 * (1 + math.Cos(omega*n))
		out[i] = (n / sampleRate) * w
	}

	return out
}

// Derivative returns the time-derivative of a Hann window, in units of
// per-second. It is the companion window to [TimeWeighted]: its FFT gives
// the frequency-reassignment correction term for each bin.
func Derivative(length int, sampleRate float64) []float64 {
	if length <= 0 || sampleRate <= 0 {
		return nil
	}

	out := make([]float64, length)
	omega := 2 * math.Pi / float64(length-1)
	center := float64(length-1) / 2

	for i := range out {
		n := float64(i) - center
		out[i] = -0.5 * omega * sampleRate * math.Sin(omega*n)
	}

	return out
}
