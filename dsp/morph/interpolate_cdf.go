package morph

import "math/cmplx"

// cdfInterpolator combines two plain spectra into one via the CDF
// transport map, reusing its scratch buffers across hops.
type cdfInterpolator struct {
	n int

	magL, magR   []float64
	transportMap []int

	weightSum []float64    // total deposit weight landed in each output bin
	magAccum  []float64    // total deposited magnitude landed in each output bin
	phaseVec  []complex128 // weighted unit-vector sum, for circular phase averaging

	out []complex128
}

func newCDFInterpolator(n int) *cdfInterpolator {
	return &cdfInterpolator{
		n:            n,
		magL:         make([]float64, n),
		magR:         make([]float64, n),
		transportMap: make([]int, n),
		weightSum:    make([]float64, n),
		magAccum:     make([]float64, n),
		phaseVec:     make([]complex128, n),
		out:          make([]complex128, n),
	}
}

// interpolate blends left and right spectra (length n, as produced by
// [kernel.analyze]) at factor k into the interpolator's internal output
// buffer and returns it. phase is the engine's running phase vector
// (length n); it is advanced in place here but otherwise unread by the CDF
// variant, kept purely as per-engine state shared in shape with the
// reassignment engine. The returned spectrum slice aliases internal state
// and is only valid until the next call.
func (c *cdfInterpolator) interpolate(left, right []point, phase []float64, k, windowSeconds float64) []complex128 {
	n := c.n

	sumL, sumR := 0.0, 0.0
	for i := 0; i < n; i++ {
		c.magL[i] = cmplx.Abs(left[i].value)
		c.magR[i] = cmplx.Abs(right[i].value)
		sumL += c.magL[i]
		sumR += c.magR[i]
	}

	switch {
	case sumL < cdfEps && sumR < cdfEps:
		for i := 0; i < n; i++ {
			c.out[i] = 0
		}
		return c.out
	case sumL < cdfEps:
		c.advancePhaseFrom(right, phase, windowSeconds)
		return c.scaledPassthrough(right, k)
	case sumR < cdfEps:
		c.advancePhaseFrom(left, phase, windowSeconds)
		return c.scaledPassthrough(left, 1-k)
	}

	buildCDFMap(c.transportMap, c.magL, c.magR)

	for i := 0; i < n; i++ {
		c.weightSum[i] = 0
		c.magAccum[i] = 0
		c.phaseVec[i] = 0
	}

	for i := 0; i < n; i++ {
		j := c.transportMap[i]

		pos := (1-k)*float64(i) + k*float64(j)
		mag := (1-k)*c.magL[i] + k*c.magR[j]
		phaseL := cmplx.Phase(left[i].value)
		unit := cmplx.Rect(1, phaseL)

		lo := int(pos)
		frac := pos - float64(lo)
		hi := lo + 1

		c.deposit(lo, 1-frac, mag, unit)
		c.deposit(hi, frac, mag, unit)
	}

	for p := 0; p < n; p++ {
		var ph float64
		if c.weightSum[p] >= cdfEps {
			ph = cmplx.Phase(c.phaseVec[p])
		} else {
			ph = cmplx.Phase(right[p].value)
		}
		c.out[p] = cmplx.Rect(c.magAccum[p], ph)
		phase[p] += left[p].freq * windowSeconds / 2
	}

	return c.out
}

func (c *cdfInterpolator) deposit(bin int, weight, mag float64, unit complex128) {
	if bin < 0 || bin >= c.n || weight <= 0 {
		return
	}
	c.weightSum[bin] += weight
	c.magAccum[bin] += weight * mag
	c.phaseVec[bin] += complex(weight, 0) * unit
}

func (c *cdfInterpolator) scaledPassthrough(side []point, scale float64) []complex128 {
	for i := 0; i < c.n; i++ {
		c.out[i] = complex(scale, 0) * side[i].value
	}
	return c.out
}

// advancePhaseFrom sets phase[i] to the non-silent side's argument advanced
// by its nominal frequency over half a window, used when the other side is
// silent and no transport map can be built.
func (c *cdfInterpolator) advancePhaseFrom(side []point, phase []float64, windowSeconds float64) {
	for i := range phase {
		phase[i] = cmplx.Phase(side[i].value) + side[i].freq*windowSeconds/2
	}
}
