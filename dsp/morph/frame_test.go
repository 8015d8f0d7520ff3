package morph

import "testing"

func TestBuildPoints(t *testing.T) {
	const fftLen = 8
	spectrum := make([]complex128, fftLen/2+1)
	for i := range spectrum {
		spectrum[i] = complex(float64(i), 0)
	}

	dst := make([]point, len(spectrum))
	buildPoints(dst, spectrum, 48000, fftLen)

	for i, p := range dst {
		if p.value != spectrum[i] {
			t.Errorf("dst[%d].value = %v, want %v", i, p.value, spectrum[i])
		}
		want := binFreqHz(i, fftLen, 48000)
		if p.freq != want {
			t.Errorf("dst[%d].freq = %v, want %v", i, p.freq, want)
		}
	}
}

func TestBuildReassignedPointsSilentBinFallsBackToNominal(t *testing.T) {
	const fftLen = 8
	n := fftLen/2 + 1

	plain := make([]complex128, n)
	timeW := make([]complex128, n)
	dervW := make([]complex128, n)

	dst := make([]point, n)
	buildReassignedPoints(dst, plain, timeW, dervW, 48000, fftLen)

	for i, p := range dst {
		want := binFreqHz(i, fftLen, 48000)
		if p.freqR != want {
			t.Errorf("dst[%d].freqR = %v, want %v", i, p.freqR, want)
		}
		if p.timeR != 0 {
			t.Errorf("dst[%d].timeR = %v, want 0", i, p.timeR)
		}
	}
}

func TestIsFiniteFloat(t *testing.T) {
	tests := []struct {
		value float64
		want  bool
	}{
		{0, true},
		{1.5, true},
		{-1.5, true},
	}
	for _, tc := range tests {
		if got := isFiniteFloat(tc.value); got != tc.want {
			t.Errorf("isFiniteFloat(%v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
