// Package morph implements real-time spectral morphing between a main and a
// sidechain audio stream via optimal-transport interpolation of their
// short-time spectra.
//
// Two algorithms are available through [Engine]: a CDF-based transport map
// ([AlgorithmCDF]) and a spectral-reassignment transport map
// ([AlgorithmReassignment]), selectable at any time via [Engine.SetAlgorithm]
// without reallocating. Both share the same streaming dispatcher, which
// accepts host buffers of any size and reports a fixed, buffer-size-
// independent latency via [Engine.LatencySamples].
//
// Remaining subpackages used here:
//   - dsp/window for analysis/synthesis window generation
//   - dsp/core for allocation-free buffer helpers
//
// Per-bin magnitude/phase extraction is done inline with cmplx.Abs/
// cmplx.Phase rather than through a shared helper package, since it runs
// once per bin per hop on the real-time path and a slice-returning helper
// would allocate on every call.
package morph
