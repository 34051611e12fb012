package resample

// OutputFunc receives one resampled frame as channels unclamped
// accumulated samples (fit in 32 bits, but not clamped to int16 — the
// caller clamps). frame is a view into a scratch array reused by the
// engine on every call and must not be retained. Returning false stops
// the resample call at the current frame boundary; the engine's position
// state is preserved so a later call resumes exactly where this one left
// off.
type OutputFunc func(frame []int32) (keepGoing bool)

// LowLevel is a stateful positional convolver: given a padded input region
// and a Table, it emits successive output frames by kernel convolution
// until either the region is exhausted or the output callback signals
// stop (§3, §4.3).
//
// The caller owns the input region passed to Resample and must pad it with
// IntegerStretchedKernelRadius frames of context on each side — real
// neighboring audio when resampling a contiguous stream in chunks, or
// silence when resampling a standalone buffer.
type LowLevel struct {
	table *Table

	channels int

	positionInteger    int
	positionFractional uint32 // 16.16

	increment uint32 // 16.16, input_rate/output_rate

	stretchedKernelRadius        uint32 // 16.16, R*scale
	integerStretchedKernelRadius int    // ceil(stretchedKernelRadius)
	stretchedKernelRadiusDelta   uint32 // 16.16, in [0, 1)

	kernelStepSize   uint32 // 16.16
	sampleNormaliser int32  // 17.15

	acc [MaxChannels]int32 // per-channel accumulator scratch, reused
}

// Channels returns the configured channel count.
func (ll *LowLevel) Channels() int { return ll.channels }

// IntegerStretchedKernelRadius returns the number of input frames of
// padding the caller must supply on each side of the region passed to
// Resample.
func (ll *LowLevel) IntegerStretchedKernelRadius() int {
	return ll.integerStretchedKernelRadius
}

// Init sets up a LowLevel engine for channels interleaved channels and the
// given table, with the position reset to the start of the stream, then
// calls Adjust with the given rates.
func (ll *LowLevel) Init(table *Table, channels int, inputRate, outputRate, lowPassRate uint32) error {
	if channels < 1 || channels > MaxChannels {
		return ErrChannelsInvalid
	}
	ll.table = table
	ll.channels = channels
	ll.positionInteger = 0
	ll.positionFractional = 0
	return ll.Adjust(inputRate, outputRate, lowPassRate)
}

// Adjust recomputes the engine's derived fixed-point fields for a new
// input/output/low-pass rate triple, carrying the current position over
// so that no output frame is duplicated or skipped by the rate change
// (§5 Ordering guarantees).
func (ll *LowLevel) Adjust(inputRate, outputRate, lowPassRate uint32) error {
	if inputRate == 0 || outputRate == 0 || lowPassRate == 0 {
		return ErrRateInvalid
	}

	effectiveCutoff := inputRate
	if outputRate < effectiveCutoff {
		effectiveCutoff = outputRate
	}
	if lowPassRate < effectiveCutoff {
		effectiveCutoff = lowPassRate
	}

	increment := calculateRatio(inputRate, outputRate)

	kernelScale := calculateRatio(inputRate, effectiveCutoff)
	if kernelScale < fixedOne {
		kernelScale = fixedOne // the kernel is stretched, never compressed
	}

	stretchedRadius := uint32(KernelRadius) * kernelScale
	integerRadius := fixedCeil(stretchedRadius)
	radiusDelta := toFixed(integerRadius) - stretchedRadius

	kernelStep := fixedMultiply(uint32(KernelResolution)<<fixedShift, calculateRatio(effectiveCutoff, inputRate))

	// effectiveCutoff/inputRate re-expressed from 16.16 to 17.15.
	normaliser := int32(calculateRatio(effectiveCutoff, inputRate) >> 1)

	ll.increment = increment
	ll.stretchedKernelRadius = stretchedRadius
	ll.integerStretchedKernelRadius = integerRadius
	ll.stretchedKernelRadiusDelta = radiusDelta
	ll.kernelStepSize = kernelStep
	ll.sampleNormaliser = normaliser
	return nil
}

// Resample convolves successive output frames from input, a slice holding
// the logical input preceded and followed by
// IntegerStretchedKernelRadius() frames of padding, for a logical length
// of totalInputFrames frames (not counting padding). It returns the
// number of logical input frames left unconsumed in *totalInputFrames
// (always 0 when terminated is true) and whether the call terminated
// because the input was exhausted (true) or because output stopped the
// stream (false).
//
// input must have length at least
// (*totalInputFrames + 2*IntegerStretchedKernelRadius()) * Channels().
func (ll *LowLevel) Resample(input []int16, totalInputFrames *int, output OutputFunc) (terminated bool) {
	rad := ll.integerStretchedKernelRadius
	channels := ll.channels

	for {
		if ll.positionInteger >= *totalInputFrames {
			ll.positionInteger -= *totalInputFrames
			*totalInputFrames = 0
			return true
		}

		pi := ll.positionInteger
		pf := ll.positionFractional

		minRelative := fixedCeil(pf + ll.stretchedKernelRadiusDelta)
		maxRelative := fixedFloor(pf + ll.stretchedKernelRadius)

		min := (pi + minRelative) * channels
		max := (pi + rad + maxRelative) * channels

		kernelIndex := fixedMultiply(ll.kernelStepSize, toFixed(minRelative)-pf)

		acc := ll.acc[:channels]
		for i := range acc {
			acc[i] = 0
		}

		for sampleIndex, k := min, kernelIndex; sampleIndex < max; sampleIndex, k = sampleIndex+channels, k+ll.kernelStepSize {
			tableIndex := fixedFloor(k)
			assertIndexInBounds(ll.table.Len(), tableIndex, len(input), sampleIndex+channels-1)
			kernelValue := ll.table.at(tableIndex)
			for c := 0; c < channels; c++ {
				acc[c] += mulShift16(int32(input[sampleIndex+c]), kernelValue)
			}
		}

		for c := range acc {
			acc[c] = int32((int64(acc[c]) * int64(ll.sampleNormaliser)) >> 15)
		}

		ll.positionFractional += ll.increment
		ll.positionInteger += fixedFloor(ll.positionFractional)
		ll.positionFractional %= fixedOne

		if !output(acc) {
			if ll.positionInteger > *totalInputFrames {
				ll.positionInteger = *totalInputFrames
			}
			*totalInputFrames -= ll.positionInteger
			ll.positionInteger = 0
			return false
		}
	}
}
