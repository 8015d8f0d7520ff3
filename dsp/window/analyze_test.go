package window

import (
	"math"
	"testing"
)

func TestAnalyzeHannMatchesKnownProperties(t *testing.T) {
	coeffs := Generate(TypeHann, 1024)
	a := Analyze(coeffs)

	// A Hann window's ENBW is 1.5 bins; coherent gain is 0.5.
	if math.Abs(a.ENBW-1.5) > 0.01 {
		t.Errorf("ENBW = %v, want ~1.5", a.ENBW)
	}
	if math.Abs(a.CoherentGain-0.5) > 0.01 {
		t.Errorf("CoherentGain = %v, want ~0.5", a.CoherentGain)
	}
	if a.HighestSidelobedB >= -25 {
		t.Errorf("HighestSidelobedB = %v, want below -25dB for a Hann window", a.HighestSidelobedB)
	}
}

func TestAnalyzeEmptyCoeffs(t *testing.T) {
	a := Analyze(nil)
	if a != (Analysis{}) {
		t.Errorf("Analyze(nil) = %+v, want zero value", a)
	}
}
