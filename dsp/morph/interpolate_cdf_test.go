package morph

import "testing"

func makeCDFPoints(values []complex128, sampleRate float64, fftLen int) []point {
	pts := make([]point, len(values))
	for i, v := range values {
		pts[i] = point{value: v, freq: binFreqHz(i, fftLen, sampleRate)}
	}
	return pts
}

func TestCDFInterpolateBothSilent(t *testing.T) {
	n := 5
	c := newCDFInterpolator(n)
	left := makeCDFPoints(make([]complex128, n), 48000, 8)
	right := makeCDFPoints(make([]complex128, n), 48000, 8)
	phase := make([]float64, n)

	out := c.interpolate(left, right, phase, 0.5, 0.001)
	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0", i, v)
		}
	}
}

func TestCDFInterpolateLeftSilentPassesThroughRight(t *testing.T) {
	n := 4
	c := newCDFInterpolator(n)
	left := makeCDFPoints(make([]complex128, n), 48000, 8)
	rightValues := []complex128{complex(1, 0), complex(0, 2), complex(3, 1), complex(0.5, 0.5)}
	right := makeCDFPoints(rightValues, 48000, 8)
	phase := make([]float64, n)

	const k = 0.5
	out := c.interpolate(left, right, phase, k, 0.001)
	for i, v := range out {
		want := complex(k, 0) * rightValues[i]
		if v != want {
			t.Errorf("out[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestCDFInterpolateMatchedNonSilentCarriesEnergy(t *testing.T) {
	n := 8
	c := newCDFInterpolator(n)

	leftValues := make([]complex128, n)
	rightValues := make([]complex128, n)
	leftValues[2] = complex(1, 0)
	rightValues[5] = complex(1, 0)

	left := makeCDFPoints(leftValues, 48000, 2*n)
	right := makeCDFPoints(rightValues, 48000, 2*n)
	phase := make([]float64, n)

	out := c.interpolate(left, right, phase, 0.5, 0.001)

	total := 0.0
	for _, v := range out {
		total += real(v)*real(v) + imag(v)*imag(v)
	}
	if total <= 0 {
		t.Errorf("interpolated spectrum carries no energy")
	}

	for i, p := range phase {
		if !isFiniteFloat(p) {
			t.Errorf("phase[%d] = %v, not finite", i, p)
		}
	}
}
