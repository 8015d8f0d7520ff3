package morph

import (
	"errors"
	"testing"

	"github.com/cwbudde/spectral-morph/internal/testutil"
)

func TestNewCDFEngineDerivedSizing(t *testing.T) {
	e, err := newCDFEngine(48000, 20, 4, 2)
	if err != nil {
		t.Fatalf("newCDFEngine() error = %v", err)
	}

	if e.windowLen%e.hopSize != 0 {
		t.Errorf("windowLen=%d not a multiple of hopSize=%d", e.windowLen, e.hopSize)
	}
	if e.fftLen != e.windowLen*2 {
		t.Errorf("fftLen = %d, want %d", e.fftLen, e.windowLen*2)
	}
	if e.bins != e.fftLen/2+1 {
		t.Errorf("bins = %d, want %d", e.bins, e.fftLen/2+1)
	}
	if e.latency != e.windowLen/2 {
		t.Errorf("latency = %d, want %d", e.latency, e.windowLen/2)
	}
}

func TestNewCDFEngineRejectsInvalidConfig(t *testing.T) {
	if _, err := newCDFEngine(0, 20, 4, 2); !errors.Is(err, ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
}

func TestCDFEngineProcessSilenceIsSilent(t *testing.T) {
	e, err := newCDFEngine(48000, 20, 4, 1)
	if err != nil {
		t.Fatalf("newCDFEngine() error = %v", err)
	}

	n := e.hopSize * 4
	main := make([]float64, n)
	side := make([]float64, n)
	out := make([]float64, n)

	if err := e.process(main, side, out, n, 0.5); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0 for silent input", i, v)
		}
	}
}

func TestCDFEngineProcessSineProducesFiniteOutput(t *testing.T) {
	e, err := newCDFEngine(48000, 20, 4, 2)
	if err != nil {
		t.Fatalf("newCDFEngine() error = %v", err)
	}

	n := e.hopSize * 8
	main := testutil.DeterministicSine(440, 48000, 0.5, n)
	side := testutil.DeterministicSine(880, 48000, 0.3, n)
	out := make([]float64, n)

	if err := e.process(main, side, out, n, 0.5); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	for i, v := range out {
		if !isFiniteFloat(v) {
			t.Fatalf("out[%d] = %v, not finite", i, v)
		}
	}
}

func TestCDFEngineResetZeroesPhaseAndDispatcher(t *testing.T) {
	e, err := newCDFEngine(48000, 20, 4, 1)
	if err != nil {
		t.Fatalf("newCDFEngine() error = %v", err)
	}

	n := e.hopSize * 4
	main := testutil.DeterministicNoise(7, 0.5, n)
	side := testutil.DeterministicNoise(9, 0.5, n)
	out := make([]float64, n)
	if err := e.process(main, side, out, n, 0.5); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	e.reset()

	for i, p := range e.phase {
		if p != 0 {
			t.Errorf("phase[%d] = %v after reset, want 0", i, p)
		}
	}
	for i, v := range e.disp.ring {
		if v != 0 {
			t.Errorf("ring[%d] = %v after reset, want 0", i, v)
		}
	}
}
