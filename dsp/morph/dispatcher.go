package morph

import "github.com/cwbudde/spectral-morph/dsp/core"

// hopFunc runs the analysis → transport → interpolation → synthesis chain
// for one hop, reading windowLen-sample frames from mainFrame/sideFrame and
// writing a windowLen-sample synthesis result into dst.
type hopFunc func(mainFrame, sideFrame []float64, dst []float64) error

// dispatcher ring-buffers two input streams, fires one hop per
// hopSize-sized chunk of accumulated input, overlap-adds synthesis output
// into an output ring, and emits arbitrary-sized output blocks. Both input
// accumulators hold the most recent windowLen samples;
// arrival of a new sample writes into the accumulator's tail and, once
// hopSize samples have arrived, the whole accumulator is handed to the hop
// as a contiguous analysis frame and then shifted left by hopSize.
//
// Each hop's synthesis is deposited latency samples ahead of the ring
// position the very first sample will be read from, independently of how
// many hops fire within one process() call: the deposit cursor starts at
// latency and advances by hopSize every hop, never referencing the read
// cursor. This guarantees, by construction, that the first latency output
// samples are silence and makes latencySamples() exact regardless of host
// buffer size, including buffer sizes large enough to cross more than one
// hop boundary per call: each output sample is read right after its input
// sample is accumulated, so a deposit never wraps onto unread ring cells.
type dispatcher struct {
	windowLen int
	hopSize   int
	latency   int
	ringLen   int

	mainAcc, sideAcc []float64
	writeCursor      int

	ring          []float64
	readCursor    int
	depositCursor int

	synthFrame []float64
}

func newDispatcher(windowLen, hopSize, latency int) *dispatcher {
	ringLen := latency + windowLen + hopSize

	d := &dispatcher{
		windowLen:  windowLen,
		hopSize:    hopSize,
		latency:    latency,
		ringLen:    ringLen,
		mainAcc:    make([]float64, windowLen),
		sideAcc:    make([]float64, windowLen),
		ring:       make([]float64, ringLen),
		synthFrame: make([]float64, windowLen),
	}
	d.depositCursor = d.wrap(latency)
	return d
}

// reset zeros all buffers and cursors.
func (d *dispatcher) reset() {
	core.Zero(d.mainAcc)
	core.Zero(d.sideAcc)
	core.Zero(d.ring)
	core.Zero(d.synthFrame)
	d.writeCursor = 0
	d.readCursor = 0
	d.depositCursor = d.wrap(d.latency)
}

// process feeds n samples of main/side into the dispatcher, firing hop for
// every complete hop of accumulated input, and writes n output samples
// into out. main, side, and out must have length n and may alias each
// other or be distinct buffers; out may alias main.
func (d *dispatcher) process(main, side, out []float64, n int, hop hopFunc) error {
	tailStart := d.windowLen - d.hopSize

	for i := 0; i < n; i++ {
		idx := tailStart + d.writeCursor
		d.mainAcc[idx] = main[i]
		d.sideAcc[idx] = side[i]
		d.writeCursor++

		if d.writeCursor == d.hopSize {
			if err := hop(d.mainAcc, d.sideAcc, d.synthFrame); err != nil {
				return err
			}
			d.depositHop()
			d.shiftAccumulators()
			d.writeCursor = 0
		}

		pos := d.readCursor
		out[i] = d.ring[pos]
		d.ring[pos] = 0
		d.readCursor = d.wrap(pos + 1)
	}

	return nil
}

// depositHop overlap-adds synthFrame into the ring at the current deposit
// cursor, then advances the cursor by hopSize for the next hop.
func (d *dispatcher) depositHop() {
	for i, v := range d.synthFrame {
		pos := d.wrap(d.depositCursor + i)
		d.ring[pos] += v
	}
	d.depositCursor = d.wrap(d.depositCursor + d.hopSize)
}

func (d *dispatcher) shiftAccumulators() {
	core.CopyInto(d.mainAcc, d.mainAcc[d.hopSize:])
	core.CopyInto(d.sideAcc, d.sideAcc[d.hopSize:])
	core.Zero(d.mainAcc[d.windowLen-d.hopSize:])
	core.Zero(d.sideAcc[d.windowLen-d.hopSize:])
}

func (d *dispatcher) wrap(pos int) int {
	pos %= d.ringLen
	if pos < 0 {
		pos += d.ringLen
	}
	return pos
}
