package morph

import "fmt"

// computeWindowAndHop derives an integer window length and hop size from
// the façade's (sample_rate, window_ms, hop_divisor) parameters.
//
// When enforceCOLA is false (the CDF engine), windowLen is
// window_ms*sample_rate/1000 truncated to an integer, and hopSize is
// windowLen/hop_divisor, also truncated by integer division. This matches
// (44100, 100ms, hop_divisor=4) producing a latency of 2205 samples, at the
// cost of the window length not always being a multiple of 2·hop_divisor.
//
// When enforceCOLA is true (the reassignment engine), windowLen is instead
// rounded up to the nearest multiple of 2·hop_divisor, so that overlapping
// Hann windows sum to a constant; hop_size_multiplier selects
// hopSize = windowLen/(hop_divisor·hop_size_multiplier).
func computeWindowAndHop(sampleRate, windowMs float64, hopDivisor, hopSizeMultiplier int, enforceCOLA bool) (windowLen, hopSize int, err error) {
	if !(sampleRate > 0) || !isFiniteFloat(sampleRate) || !(windowMs > 0) || !isFiniteFloat(windowMs) ||
		hopDivisor <= 0 || hopSizeMultiplier <= 0 {
		return 0, 0, fmt.Errorf("%w: sampleRate=%f windowMs=%f hopDivisor=%d",
			ErrConfig, sampleRate, windowMs, hopDivisor)
	}

	raw := int(windowMs * sampleRate / 1000)

	if enforceCOLA {
		step := 2 * hopDivisor
		windowLen = ((raw + step - 1) / step) * step
		if windowLen < step {
			windowLen = step
		}
	} else {
		windowLen = raw
		if windowLen < hopDivisor {
			windowLen = hopDivisor
		}
	}

	hopSize = windowLen / (hopDivisor * hopSizeMultiplier)
	if hopSize <= 0 {
		return 0, 0, fmt.Errorf("%w: derived hop size is non-positive for window=%d hopDivisor=%d",
			ErrConfig, windowLen, hopDivisor)
	}

	return windowLen, hopSize, nil
}
