package morph

import "math/cmplx"

// massEps is the magnitude floor below which a frame is treated as
// numerically silent for mass-grouping purposes.
const massEps = 1e-10

// mass is a contiguous run of bins [leftBin, rightBin) with a designated
// centerBin and a magnitude-normalized weight in [0,1]. The masses of one
// frame partition its bin range and sum to 1 within numerical noise.
type mass struct {
	leftBin   int
	centerBin int
	rightBin  int
	weight    float64
}

// groupSpectrum partitions points into spectral masses by the sign of
// freq_r - freq. A maximal run from a rising turning point
// to the next falling-to-rising transition forms one mass, centred on the
// turning bin closest to the sign flip.
//
// A falling-to-rising transition whose accumulated magnitude is zero does
// not close the open mass; it is folded into the next successful
// transition instead, so a run of numerically silent bins never produces
// a weightless mass of its own.
//
// The first bin's sign seeds the scan state: bin 1 is compared against it,
// and bin 0 itself belongs to the first mass.
func groupSpectrum(points []point) []mass {
	n := len(points)
	if n == 0 {
		return nil
	}

	total := 0.0
	for i := range points {
		total += cmplx.Abs(points[i].value)
	}
	if total < massEps {
		return []mass{{leftBin: 0, centerBin: n / 2, rightBin: n, weight: 1}}
	}

	masses := make([]mass, 0, 8)
	left := 0
	center := 0
	sign := points[0].freqR > points[0].freq

	for i := 1; i < n; i++ {
		s := points[i].freqR > points[i].freq

		switch {
		case sign && !s:
			leftDist := points[i-1].freqR - points[i-1].freq
			rightDist := points[i].freq - points[i].freqR
			if leftDist < rightDist {
				center = i - 1
			} else {
				center = i
			}
		case !sign && s:
			weight := sumMagnitude(points, left, i) / total
			if weight > 0 {
				masses = append(masses, mass{
					leftBin:   left,
					centerBin: center,
					rightBin:  i,
					weight:    weight,
				})
				left = i
				center = i
			}
		}

		sign = s
	}

	masses = append(masses, mass{
		leftBin:   left,
		centerBin: center,
		rightBin:  n,
		weight:    sumMagnitude(points, left, n) / total,
	})

	return masses
}

func sumMagnitude(points []point, from, to int) float64 {
	sum := 0.0
	for i := from; i < to; i++ {
		sum += cmplx.Abs(points[i].value)
	}
	return sum
}

// transportTriple is one entry of a mass-level transport plan: transported
// amount of mass from leftIdx (into left's mass list) to rightIdx (into
// right's mass list).
type transportTriple struct {
	leftIdx  int
	rightIdx int
	mass     float64
}

// matchMasses solves the 1-D optimal-transport problem between two ordered
// mass lists with a classical two-pointer greedy walk. Both
// lists are assumed normalised (weights summing to 1); the result is exact
// for sorted 1-D distributions.
func matchMasses(left, right []mass) []transportTriple {
	if len(left) == 0 || len(right) == 0 {
		return nil
	}

	triples := make([]transportTriple, 0, len(left)+len(right))

	li, ri := 0, 0
	lm, rm := left[0].weight, right[0].weight

	for {
		switch {
		case lm == rm:
			triples = append(triples, transportTriple{leftIdx: li, rightIdx: ri, mass: lm})
			li++
			ri++
			if li >= len(left) || ri >= len(right) {
				return triples
			}
			lm, rm = left[li].weight, right[ri].weight
		case lm < rm:
			triples = append(triples, transportTriple{leftIdx: li, rightIdx: ri, mass: lm})
			rm -= lm
			li++
			if li >= len(left) {
				return triples
			}
			lm = left[li].weight
		default:
			triples = append(triples, transportTriple{leftIdx: li, rightIdx: ri, mass: rm})
			lm -= rm
			ri++
			if ri >= len(right) {
				return triples
			}
			rm = right[ri].weight
		}
	}
}
