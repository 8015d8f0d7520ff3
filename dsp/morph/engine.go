package morph

import (
	"fmt"

	"github.com/cwbudde/spectral-morph/dsp/core"
)

// Algorithm selects between the two interchangeable transport variants.
type Algorithm int

const (
	// AlgorithmCDF interpolates via a cumulative-distribution transport map.
	AlgorithmCDF Algorithm = iota

	// AlgorithmReassignment interpolates via spectral-mass transport
	// computed from Auger-Flandrin reassignment.
	AlgorithmReassignment
)

// String returns a human-readable algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmCDF:
		return "cdf"
	case AlgorithmReassignment:
		return "reassignment"
	default:
		return "unknown"
	}
}

// Option configures an [Engine] at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	algorithm Algorithm
	warnSink  func(string)
}

func defaultEngineConfig() engineConfig {
	return engineConfig{algorithm: AlgorithmCDF}
}

// WithAlgorithm sets the engine's initially active algorithm. Both
// algorithms are always constructed; this only selects which one
// [Engine.Process] dispatches to until [Engine.SetAlgorithm] is called.
func WithAlgorithm(a Algorithm) Option {
	return func(c *engineConfig) { c.algorithm = a }
}

// WithWarnSink installs a callback that [Engine.Process] invokes at the end
// of every call while either algorithm's numerical-degeneracy warning tally
// is non-zero. It is intended for offline diagnostics; nil disables it (the
// default).
func WithWarnSink(fn func(string)) Option {
	return func(c *engineConfig) { c.warnSink = fn }
}

// Engine is the spectral-morph façade: it owns both transport algorithms,
// constructed up front so that switching between them is a pointer flip
// with no reallocation. Process and latency queries go to whichever is
// active; Reset resets both.
type Engine struct {
	sampleRate    float64
	windowMs      float64
	hopDivisor    int
	fftMultiplier int

	cdf      *cdfEngine
	reassign *reassignEngine
	active   Algorithm

	warnSink func(string)
}

// NewEngine constructs an Engine with both algorithms fully allocated.
// windowMs must fall roughly in [20,200], hopDivisor is typically one of
// {2,4,8}, and fftMultiplier one of {1,2,4}; out-of-range but positive
// values are accepted and merely produce an unusual latency/resolution
// trade-off. Returns an error wrapping [ErrConfig] if any parameter is
// non-positive or the window cannot be made to satisfy the COLA invariant.
func NewEngine(sampleRate, windowMs float64, hopDivisor, fftMultiplier int, opts ...Option) (*Engine, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cdf, err := newCDFEngine(sampleRate, windowMs, hopDivisor, fftMultiplier)
	if err != nil {
		return nil, fmt.Errorf("morph: cdf engine: %w", err)
	}

	reassign, err := newReassignEngine(sampleRate, windowMs, hopDivisor, fftMultiplier)
	if err != nil {
		return nil, fmt.Errorf("morph: reassignment engine: %w", err)
	}

	return &Engine{
		sampleRate:    sampleRate,
		windowMs:      windowMs,
		hopDivisor:    hopDivisor,
		fftMultiplier: fftMultiplier,
		cdf:           cdf,
		reassign:      reassign,
		active:        cfg.algorithm,
		warnSink:      cfg.warnSink,
	}, nil
}

// Process morphs n samples of main and side into out at interpolation
// factor k (clamped to [0,1]). main, side, and out must have equal length;
// out may alias main. Process never blocks, and never allocates unless a
// warn sink is installed and a warning tally is non-zero (the sink message
// is formatted per call).
func (e *Engine) Process(main, side, out []float64, k float64) error {
	n := len(main)
	if len(side) != n || len(out) != n {
		return fmt.Errorf("%w: main=%d side=%d out=%d", ErrLengthMismatch, n, len(side), len(out))
	}

	k = core.Clamp(k, 0, 1)

	var err error
	switch e.active {
	case AlgorithmReassignment:
		err = e.reassign.process(main, side, out, n, k)
	default:
		err = e.cdf.process(main, side, out, n, k)
	}
	if err != nil {
		return err
	}

	e.reportWarnings()

	return nil
}

// Reset zeros all buffers, cursors, and the running phase vector of both
// algorithms. Idempotent.
func (e *Engine) Reset() {
	e.cdf.reset()
	e.reassign.reset()
}

// SetSampleRate reconfigures both algorithms for a new sample rate,
// equivalent to reconstructing the engine with the same window_ms,
// hop_divisor, and fft_multiplier. Not real-time safe; the host must call
// it outside the audio callback.
func (e *Engine) SetSampleRate(sampleRate float64) error {
	cdf, err := newCDFEngine(sampleRate, e.windowMs, e.hopDivisor, e.fftMultiplier)
	if err != nil {
		return fmt.Errorf("morph: cdf engine: %w", err)
	}

	reassign, err := newReassignEngine(sampleRate, e.windowMs, e.hopDivisor, e.fftMultiplier)
	if err != nil {
		return fmt.Errorf("morph: reassignment engine: %w", err)
	}

	e.sampleRate = sampleRate
	e.cdf = cdf
	e.reassign = reassign

	return nil
}

// SetAlgorithm switches the active algorithm. Both remain constructed and
// retain their own state, so switching is a pointer flip; the host should
// re-query [Engine.LatencySamples] afterward.
func (e *Engine) SetAlgorithm(a Algorithm) {
	e.active = a
}

// Algorithm returns the currently active algorithm.
func (e *Engine) Algorithm() Algorithm {
	return e.active
}

// LatencySamples returns the fixed latency, in samples, of the currently
// active algorithm.
func (e *Engine) LatencySamples() int {
	if e.active == AlgorithmReassignment {
		return e.reassign.latency
	}
	return e.cdf.latency
}

// Diagnostics reports the derived window/hop/FFT sizing and fixed latency
// of one transport algorithm, for offline inspection or display.
type Diagnostics struct {
	Algorithm      Algorithm
	WindowLen      int
	HopSize        int
	FFTLen         int
	Bins           int
	LatencySamples int
	LatencyMs      float64
}

// CDFDiagnostics reports the CDF-transport variant's derived sizing,
// regardless of which algorithm is currently active.
func (e *Engine) CDFDiagnostics() Diagnostics {
	return Diagnostics{
		Algorithm:      AlgorithmCDF,
		WindowLen:      e.cdf.windowLen,
		HopSize:        e.cdf.hopSize,
		FFTLen:         e.cdf.fftLen,
		Bins:           e.cdf.bins,
		LatencySamples: e.cdf.latency,
		LatencyMs:      1000 * float64(e.cdf.latency) / e.cdf.sampleRate,
	}
}

// ReassignmentDiagnostics reports the reassignment variant's derived
// sizing, regardless of which algorithm is currently active.
func (e *Engine) ReassignmentDiagnostics() Diagnostics {
	return Diagnostics{
		Algorithm:      AlgorithmReassignment,
		WindowLen:      e.reassign.windowLen,
		HopSize:        e.reassign.hopSize,
		FFTLen:         e.reassign.fftLen,
		Bins:           e.reassign.bins,
		LatencySamples: e.reassign.latency,
		LatencyMs:      1000 * float64(e.reassign.latency) / e.reassign.sampleRate,
	}
}

// WarningCount returns the cumulative number of recovered numerical
// degeneracies across both algorithms since construction or the last
// [Engine.SetSampleRate], which rebuilds both algorithms and so starts the
// tally again from zero. [Engine.Reset] does not clear the tally.
func (e *Engine) WarningCount() uint64 {
	return e.cdf.warnings + e.reassign.warnings
}

func (e *Engine) reportWarnings() {
	if e.warnSink == nil {
		return
	}
	if e.cdf.warnings > 0 || e.reassign.warnings > 0 {
		e.warnSink(fmt.Sprintf("morph: warning tally cdf=%d reassignment=%d", e.cdf.warnings, e.reassign.warnings))
	}
}
