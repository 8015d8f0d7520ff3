package morph

import (
	"fmt"

	"github.com/cwbudde/spectral-morph/dsp/core"
)

// cdfEngine is the CDF-transport variant of the spectral morpher: it maps
// magnitude spectra via a cumulative-distribution transport map and
// reconstructs with per-bin magnitude/phase averaging.
type cdfEngine struct {
	sampleRate    float64
	windowLen     int
	hopSize       int
	hopDivisor    int
	fftLen        int
	bins          int
	latency       int
	windowSeconds float64

	kern   *kernel
	interp *cdfInterpolator
	disp   *dispatcher

	phase      []float64
	leftPoints []point
	rightPts   []point

	k float64

	warnings uint64
}

func newCDFEngine(sampleRate, windowMs float64, hopDivisor, fftMultiplier int) (*cdfEngine, error) {
	windowLen, hopSize, err := computeWindowAndHop(sampleRate, windowMs, hopDivisor, 1, false)
	if err != nil {
		return nil, err
	}

	fftLen := windowLen * fftMultiplier
	bins := fftLen/2 + 1
	latency := windowLen / 2

	kern, err := newKernel(sampleRate, windowLen, fftLen, hopDivisor, false)
	if err != nil {
		return nil, err
	}

	e := &cdfEngine{
		sampleRate:    sampleRate,
		windowLen:     windowLen,
		hopSize:       hopSize,
		hopDivisor:    hopDivisor,
		fftLen:        fftLen,
		bins:          bins,
		latency:       latency,
		windowSeconds: float64(windowLen) / sampleRate,
		kern:          kern,
		interp:        newCDFInterpolator(bins),
		disp:          newDispatcher(windowLen, hopSize, latency),
		phase:         make([]float64, bins),
		leftPoints:    make([]point, bins),
		rightPts:      make([]point, bins),
		k:             0.5,
	}

	return e, nil
}

func (e *cdfEngine) reset() {
	e.disp.reset()
	core.Zero(e.phase)
}

func (e *cdfEngine) process(main, side, out []float64, n int, k float64) error {
	e.k = k
	return e.disp.process(main, side, out, n, e.hop)
}

func (e *cdfEngine) hop(mainFrame, sideFrame, dst []float64) error {
	specL, err := e.kern.analyze(mainFrame)
	if err != nil {
		return fmt.Errorf("morph: cdf engine main analysis: %w", err)
	}
	buildPoints(e.leftPoints, specL, e.sampleRate, e.fftLen)

	specR, err := e.kern.analyze(sideFrame)
	if err != nil {
		return fmt.Errorf("morph: cdf engine side analysis: %w", err)
	}
	buildPoints(e.rightPts, specR, e.sampleRate, e.fftLen)

	out := e.interp.interpolate(e.leftPoints, e.rightPts, e.phase, e.k, e.windowSeconds)

	if err := e.kern.synthesize(out, dst); err != nil {
		return fmt.Errorf("morph: cdf engine synthesis: %w", err)
	}

	return nil
}
