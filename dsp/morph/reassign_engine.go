package morph

import (
	"fmt"

	"github.com/cwbudde/spectral-morph/dsp/core"
)

// reassignEngine is the spectral-reassignment variant of the morpher: it
// groups each frame's spectrum into spectral masses using Auger-Flandrin
// reassignment and transports mass between frames with a
// greedy two-pointer matcher, reconstructing with copy-shifted, phase-
// rotated bin placement.
type reassignEngine struct {
	sampleRate    float64
	windowLen     int
	hopSize       int
	hopDivisor    int
	fftLen        int
	bins          int
	latency       int
	windowSeconds float64

	kern   *kernel
	interp *reassignInterpolator
	disp   *dispatcher

	phase      []float64
	leftPoints []point
	rightPts   []point

	k float64

	warnings uint64
}

func newReassignEngine(sampleRate, windowMs float64, hopDivisor, fftMultiplier int) (*reassignEngine, error) {
	windowLen, hopSize, err := computeWindowAndHop(sampleRate, windowMs, hopDivisor, 2, true)
	if err != nil {
		return nil, err
	}

	fftLen := windowLen * fftMultiplier
	bins := fftLen/2 + 1
	latency := (2*hopDivisor - 1) * hopSize

	kern, err := newKernel(sampleRate, windowLen, fftLen, hopDivisor, true)
	if err != nil {
		return nil, err
	}

	e := &reassignEngine{
		sampleRate:    sampleRate,
		windowLen:     windowLen,
		hopSize:       hopSize,
		hopDivisor:    hopDivisor,
		fftLen:        fftLen,
		bins:          bins,
		latency:       latency,
		windowSeconds: float64(windowLen) / sampleRate,
		kern:          kern,
		disp:          newDispatcher(windowLen, hopSize, latency),
		phase:         make([]float64, bins),
		leftPoints:    make([]point, bins),
		rightPts:      make([]point, bins),
		k:             0.5,
	}
	e.interp = newReassignInterpolator(bins, &e.warnings)

	return e, nil
}

func (e *reassignEngine) reset() {
	e.disp.reset()
	core.Zero(e.phase)
}

func (e *reassignEngine) process(main, side, out []float64, n int, k float64) error {
	e.k = k
	return e.disp.process(main, side, out, n, e.hop)
}

func (e *reassignEngine) hop(mainFrame, sideFrame, dst []float64) error {
	plainL, timeL, dervL, err := e.kern.analyzeReassigned(mainFrame)
	if err != nil {
		return fmt.Errorf("morph: reassign engine main analysis: %w", err)
	}
	buildReassignedPoints(e.leftPoints, plainL, timeL, dervL, e.sampleRate, e.fftLen)

	plainR, timeR, dervR, err := e.kern.analyzeReassigned(sideFrame)
	if err != nil {
		return fmt.Errorf("morph: reassign engine side analysis: %w", err)
	}
	buildReassignedPoints(e.rightPts, plainR, timeR, dervR, e.sampleRate, e.fftLen)

	out := e.interp.interpolate(e.leftPoints, e.rightPts, e.phase, e.k, e.windowSeconds)

	if err := e.kern.synthesize(out, dst); err != nil {
		return fmt.Errorf("morph: reassign engine synthesis: %w", err)
	}

	return nil
}
