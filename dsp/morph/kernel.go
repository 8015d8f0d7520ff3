package morph

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/spectral-morph/dsp/window"
)

// kernel performs windowed analysis and synthesis over a fixed window/FFT
// size pair, reusing its scratch buffers and FFT plan across hops. reassign
// selects whether the time- and derivative-weighted Hann variants are
// built alongside the plain one.
type kernel struct {
	sampleRate float64
	windowLen  int
	fftLen     int
	half       int // fftLen/2, last valid bin index is half
	padOffset  int // (fftLen-windowLen)/2
	synthScale float64

	plan *algofft.Plan[complex128]

	hann  []float64
	timeW []float64
	dervW []float64

	scratch  []complex128 // fftLen, reused by analyze
	scratchT []complex128
	scratchD []complex128
}

func newKernel(sampleRate float64, windowLen, fftLen, hopDivisor int, reassign bool) (*kernel, error) {
	if windowLen <= 0 || fftLen < windowLen || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: invalid kernel dimensions (window=%d fft=%d sampleRate=%f)",
			ErrConfig, windowLen, fftLen, sampleRate)
	}

	plan, err := algofft.NewPlan64(fftLen)
	if err != nil {
		return nil, fmt.Errorf("morph: failed to create FFT plan: %w", err)
	}

	k := &kernel{
		sampleRate: sampleRate,
		windowLen:  windowLen,
		fftLen:     fftLen,
		half:       fftLen / 2,
		padOffset:  (fftLen - windowLen) / 2,
		synthScale: 1 / (float64(fftLen) * float64(hopDivisor)),
		plan:       plan,
		hann:       window.Generate(window.TypeHann, windowLen),
		scratch:    make([]complex128, fftLen),
	}

	if reassign {
		k.timeW = window.TimeWeighted(windowLen, sampleRate)
		k.dervW = window.Derivative(windowLen, sampleRate)
		k.scratchT = make([]complex128, fftLen)
		k.scratchD = make([]complex128, fftLen)
	}

	return k, nil
}

// analyze windows frame with the plain Hann window, zero-pads it into the
// centre of the FFT buffer, and performs a forward FFT in place. The
// returned slice is the kernel's internal scratch buffer (length fftLen,
// reused on the next call); callers only read bins [0, half].
func (k *kernel) analyze(frame []float64) ([]complex128, error) {
	fillPadded(k.scratch, frame, k.hann, k.padOffset)

	if err := k.plan.Forward(k.scratch, k.scratch); err != nil {
		return nil, fmt.Errorf("morph: forward FFT failed: %w", err)
	}

	return k.scratch, nil
}

// analyzeReassigned analyzes frame three times, with the plain, time-
// weighted, and derivative-weighted Hann windows, for use by the
// reassignment engine. Returned slices alias kernel scratch buffers.
func (k *kernel) analyzeReassigned(frame []float64) (plain, timeW, dervW []complex128, err error) {
	fillPadded(k.scratch, frame, k.hann, k.padOffset)
	fillPadded(k.scratchT, frame, k.timeW, k.padOffset)
	fillPadded(k.scratchD, frame, k.dervW, k.padOffset)

	if err := k.plan.Forward(k.scratch, k.scratch); err != nil {
		return nil, nil, nil, fmt.Errorf("morph: forward FFT failed: %w", err)
	}
	if err := k.plan.Forward(k.scratchT, k.scratchT); err != nil {
		return nil, nil, nil, fmt.Errorf("morph: forward FFT (time-weighted) failed: %w", err)
	}
	if err := k.plan.Forward(k.scratchD, k.scratchD); err != nil {
		return nil, nil, nil, fmt.Errorf("morph: forward FFT (derivative) failed: %w", err)
	}

	return k.scratch, k.scratchT, k.scratchD, nil
}

// synthesize takes bins (the interpolated spectrum, valid in [0, half]),
// mirrors it into a full-length conjugate-symmetric spectrum, performs an
// inverse FFT, extracts the centre windowLen samples, re-applies the plain
// Hann window (squared-window synthesis), and scales by the COLA
// normalisation factor. out must have length windowLen. bins is consumed
// by the time synthesize returns and may be reused by the caller
// immediately (it is copied into the kernel's own scratch buffer, which
// by this point in a hop no longer holds live analysis data).
func (k *kernel) synthesize(bins []complex128, out []float64) error {
	copy(k.scratch[:k.half+1], bins)
	mirrorConjugate(k.scratch, k.half, k.fftLen)

	if err := k.plan.Inverse(k.scratch, k.scratch); err != nil {
		return fmt.Errorf("morph: inverse FFT failed: %w", err)
	}

	for i := 0; i < k.windowLen; i++ {
		out[i] = real(k.scratch[k.padOffset+i]) * k.hann[i] * k.synthScale
	}

	return nil
}

// fillPadded writes windowed*frame into the centre of dst (length fftLen),
// zeroing everything else, with imaginary parts zero.
func fillPadded(dst []complex128, frame, win []float64, offset int) {
	for i := range dst {
		dst[i] = 0
	}
	for i, w := range win {
		dst[offset+i] = complex(frame[i]*w, 0)
	}
}

// mirrorConjugate fills the negative-frequency bins of a real-valued
// spectrum from its positive-frequency half, and forces bins 0 and half to
// be purely real, so that the inverse FFT produces a real-valued signal.
func mirrorConjugate(spectrum []complex128, half, fftLen int) {
	spectrum[0] = complex(real(spectrum[0]), 0)
	spectrum[half] = complex(real(spectrum[half]), 0)
	for k := 1; k < half; k++ {
		v := spectrum[k]
		spectrum[fftLen-k] = complex(real(v), -imag(v))
	}
}
