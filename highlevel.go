package resample

// InputFunc fills buf with up to len(buf)/channels frames of interleaved
// input and returns the number of frames actually written. Returning 0
// signals end of stream.
type InputFunc func(buf []int16) (framesWritten int)

// Resampler is the streaming adapter around LowLevel (§4.4). It owns a
// fixed-capacity input buffer with leading/trailing padding zones, pulls
// raw frames from an InputFunc on demand, and drains residual state at
// end of stream via End. Unlike LowLevel, callers never need to manage
// padding themselves.
//
// A Resampler is value-like: it is created by Init, mutated by Resample,
// Adjust and End, and requires no explicit teardown. It is not safe for
// concurrent use by multiple goroutines.
type Resampler struct {
	engine   LowLevel
	channels int

	// buf is the interleaved sample buffer. Its capacity is bufFrames
	// (the caller-visible window, see Config.BufferFrames) plus maxRadius
	// extra frames kept zeroed past the end of the buffered data. Resample
	// holds back the last maxRadius buffered frames as lookahead, so
	// LowLevel's read-ahead stays within the buffered data and does not
	// reach that tail.
	buf       []int16
	bufFrames int

	// start, end are frame offsets into buf delimiting unconsumed audio;
	// the last maxRadius frames before end are held back as lookahead.
	start, end int

	maxRadius                      int // maximumIntegerStretchedKernelRadius, fixed at Init
	leadingPaddingFramesNeeded      int
	trailingPaddingFramesRemaining int
}

// NewResampler allocates and initializes a Resampler for table and cfg.
func NewResampler(table *Table, cfg Config) (*Resampler, error) {
	r := &Resampler{}
	if err := r.Init(table, cfg); err != nil {
		return nil, err
	}
	return r, nil
}

// Init constructs the embedded LowLevel engine, snapshots its
// IntegerStretchedKernelRadius as the maximum radius future Adjust calls
// may not exceed, and resets the input buffer to its just-allocated state
// (§4.4 Init).
func (r *Resampler) Init(table *Table, cfg Config) error {
	var ll LowLevel
	if err := ll.Init(table, cfg.Channels, cfg.InputRate, cfg.OutputRate, cfg.effectiveLowPassRate()); err != nil {
		return err
	}

	bufFrames := cfg.BufferFrames
	if bufFrames == 0 {
		bufFrames = defaultBufferFrames
	}
	maxRadius := ll.IntegerStretchedKernelRadius()
	if bufFrames < 2*maxRadius+1 {
		return ErrBufferTooSmall
	}

	r.engine = ll
	r.channels = cfg.Channels
	r.bufFrames = bufFrames
	r.buf = make([]int16, (bufFrames+maxRadius)*cfg.Channels)
	r.maxRadius = maxRadius
	r.start = maxRadius
	r.end = maxRadius
	r.leadingPaddingFramesNeeded = maxRadius
	r.trailingPaddingFramesRemaining = maxRadius
	return nil
}

// Adjust re-runs the embedded engine's Adjust and validates the result
// before committing it: the new radius must not exceed the radius
// reserved at Init, and the buffer must still be able to hold two radii
// of padding plus a usable window. On error the Resampler is left
// unmodified (§4.4 Adjust).
func (r *Resampler) Adjust(inputRate, outputRate, lowPassRate uint32) error {
	tmp := r.engine
	if err := tmp.Adjust(inputRate, outputRate, lowPassRate); err != nil {
		return err
	}
	radius := tmp.IntegerStretchedKernelRadius()
	if radius > r.maxRadius {
		return ErrRadiusExceedsMaximum
	}
	if r.bufFrames < 2*radius+1 {
		return ErrBufferTooSmall
	}
	r.engine = tmp
	return nil
}

// Channels returns the configured channel count.
func (r *Resampler) Channels() int { return r.channels }

func (r *Resampler) frameSlice(frameOffset, maxFrames int) []int16 {
	lo := frameOffset * r.channels
	hi := lo + maxFrames*r.channels
	return r.buf[lo:hi:hi]
}

func (r *Resampler) zeroFrames(frameOffset, frames int) {
	lo := frameOffset * r.channels
	hi := lo + frames*r.channels
	clear(r.buf[lo:hi])
}

// Resample pulls frames from input and pushes resampled frames to output
// until either input signals end of stream (returns true, "input
// exhausted") or output stops the stream (returns false, "output
// terminated"), per §4.4.
func (r *Resampler) Resample(input InputFunc, output OutputFunc) (terminated bool) {
	for {
		if r.leadingPaddingFramesNeeded > 0 {
			n := input(r.frameSlice(r.end, r.leadingPaddingFramesNeeded))
			if n == 0 {
				return true
			}
			r.end += n
			r.leadingPaddingFramesNeeded -= n
			continue
		}

		if r.end-r.start == r.maxRadius {
			radius := r.maxRadius
			// Preserve the convolution tail: the last `2*radius` frames of
			// the just-finished batch move to the front, `radius` frames of
			// lead-in context followed by the `radius` held-back lookahead
			// frames, which are not yet consumed.
			copy(r.buf[:2*radius*r.channels], r.buf[(r.end-2*radius)*r.channels:r.end*r.channels])
			r.start = radius

			fillCap := r.bufFrames - 2*radius
			n := input(r.frameSlice(2*radius, fillCap))
			r.end = 2*radius + n
			if n == 0 {
				return true
			}
		}

		radius := r.engine.IntegerStretchedKernelRadius()
		// The engine is handed only the frames that have maxRadius frames
		// of buffered audio after them, so its read-ahead stays below
		// r.end; the reserved tail past r.end is still kept zeroed so it
		// never holds stale samples.
		r.zeroFrames(r.end, radius)

		unconsumed := r.end - r.start - r.maxRadius
		inputRegion := r.buf[(r.start-radius)*r.channels:]
		inputExhausted := r.engine.Resample(inputRegion, &unconsumed, output)
		r.start = r.end - r.maxRadius - unconsumed

		if !inputExhausted {
			return false
		}
	}
}

// End feeds the radius reserved at Init (maxRadius frames) of silence
// through the pipeline, releasing the frames held back as lookahead and
// draining the last partial window of buffered audio (§4.4 ResampleEnd). It returns false if output stopped the stream before the
// drain completed.
func (r *Resampler) End(output OutputFunc) (terminated bool) {
	silence := func(buf []int16) int {
		n := r.trailingPaddingFramesRemaining
		if max := len(buf) / r.channels; n > max {
			n = max
		}
		for i := range buf[:n*r.channels] {
			buf[i] = 0
		}
		r.trailingPaddingFramesRemaining -= n
		return n
	}
	return r.Resample(silence, output)
}
