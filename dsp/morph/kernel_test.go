package morph

import (
	"errors"
	"testing"

	"github.com/cwbudde/spectral-morph/dsp/window"
	"github.com/cwbudde/spectral-morph/internal/testutil"
)

func TestNewKernelValidation(t *testing.T) {
	tests := []struct {
		name       string
		windowLen  int
		fftLen     int
		sampleRate float64
	}{
		{"zero window", 0, 8, 48000},
		{"negative window", -8, 8, 48000},
		{"fft shorter than window", 8, 4, 48000},
		{"zero sample rate", 8, 8, 0},
		{"negative sample rate", 8, 8, -48000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newKernel(tc.sampleRate, tc.windowLen, tc.fftLen, 4, false)
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("newKernel() error = %v, want ErrConfig", err)
			}
		})
	}
}

func TestKernelAnalyzeSynthesizeRoundTrip(t *testing.T) {
	const (
		windowLen  = 8
		sampleRate = 48000.0
	)

	k, err := newKernel(sampleRate, windowLen, windowLen, 2, false)
	if err != nil {
		t.Fatalf("newKernel() error = %v", err)
	}

	hann := window.Generate(window.TypeHann, windowLen)
	frame := testutil.DeterministicSine(1000, sampleRate, 0.5, windowLen)

	spectrum, err := k.analyze(frame)
	if err != nil {
		t.Fatalf("analyze() error = %v", err)
	}

	bins := make([]complex128, windowLen/2+1)
	copy(bins, spectrum[:len(bins)])

	out := make([]float64, windowLen)
	if err := k.synthesize(bins, out); err != nil {
		t.Fatalf("synthesize() error = %v", err)
	}

	scale := 1.0 / (float64(windowLen) * 2)
	for i := range out {
		want := hann[i] * hann[i] * frame[i] * scale
		if diff := out[i] - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
}

func TestKernelAnalyzeReassignedShapes(t *testing.T) {
	const windowLen = 8

	k, err := newKernel(48000, windowLen, windowLen, 2, true)
	if err != nil {
		t.Fatalf("newKernel() error = %v", err)
	}

	frame := testutil.DeterministicSine(2000, 48000, 1, windowLen)

	plain, timeW, dervW, err := k.analyzeReassigned(frame)
	if err != nil {
		t.Fatalf("analyzeReassigned() error = %v", err)
	}
	if len(plain) != windowLen || len(timeW) != windowLen || len(dervW) != windowLen {
		t.Fatalf("unexpected output lengths: %d %d %d", len(plain), len(timeW), len(dervW))
	}
}

func TestMirrorConjugate(t *testing.T) {
	fftLen := 8
	half := fftLen / 2
	spectrum := make([]complex128, fftLen)
	for i := 0; i <= half; i++ {
		spectrum[i] = complex(float64(i+1), float64(i+1))
	}

	mirrorConjugate(spectrum, half, fftLen)

	if imag(spectrum[0]) != 0 {
		t.Errorf("bin 0 imaginary part = %v, want 0", imag(spectrum[0]))
	}
	if imag(spectrum[half]) != 0 {
		t.Errorf("bin %d imaginary part = %v, want 0", half, imag(spectrum[half]))
	}
	for k := 1; k < half; k++ {
		got := spectrum[fftLen-k]
		want := complex(real(spectrum[k]), -imag(spectrum[k]))
		if got != want {
			t.Errorf("mirrored bin %d = %v, want %v", fftLen-k, got, want)
		}
	}
}
