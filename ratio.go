package resample

import "math/bits"

// fixedOne is 1.0 represented as a 16.16 fixed-point value.
const fixedOne = 1 << 16

// fixedShift is the number of fractional bits in a 16.16 value.
const fixedShift = 16

// calculateRatio returns a/b as a 16.16 fixed-point value: floor(a<<16/b).
// If either operand is zero it returns 0 — a defensive result that leaves
// a caller's position increment at zero rather than dividing by zero,
// making the resampler make no forward progress instead of crashing
// (§4.2, §9 Open Question (a) of the originating specification; Init and
// Adjust turn a zero rate into ErrRateInvalid before it ever reaches here).
//
// a<<16 does not fit in a uint32 once a reaches 2^16 (65536 Hz, below
// common audio rates such as 96000 and 192000 Hz), so naively shifting and
// dividing in 32-bit arithmetic overflows. Rather than widen to uint64 —
// the original C library specifically avoids 64-bit intermediates for
// portability to hardware without a fast 64-bit divide — this splits a<<16
// into its upper and lower 32-bit halves and performs the division as a
// single schoolbook long-division step via math/bits.Div32, the standard
// library's direct expression of that technique.
func calculateRatio(a, b uint32) uint32 {
	if a == 0 || b == 0 {
		return 0
	}

	// a<<16, as a 48-bit value, split into hi:lo 32-bit halves. The shift
	// of a is deliberately done in uint32 arithmetic: it wraps silently,
	// leaving lo equal to exactly the lower 16 bits of a shifted into the
	// top half of the word, while hi carries the bits that the shift
	// would otherwise have lost.
	hi := a >> (32 - fixedShift)
	lo := a << fixedShift

	if hi >= b {
		// The ratio does not fit in 16.16; this does not happen for any
		// pair of real-world audio sample rates, but saturate rather
		// than let Div32 panic on divide-by-overflow.
		return ^uint32(0)
	}

	quotient, _ := bits.Div32(hi, lo, b)
	return quotient
}

// fixedMultiply computes a*b/2^16, the 16.16 fixed-point multiply, using a
// 64-bit intermediate. Unlike calculateRatio this runs on the per-sample
// hot path inside LowLevel.Resample, where a plain widen-multiply-shift is
// both correct for the bounded operand ranges defined in §3 and cheaper
// than an explicit long-division reduction.
func fixedMultiply(a, b uint32) uint32 {
	return uint32((uint64(a) * uint64(b)) >> fixedShift)
}

// mulShift16 computes a*b/2^16 for signed operands (the per-sample kernel
// convolution multiply, §4.3). A 64-bit intermediate keeps this exact for
// the int16-sample by int32-kernel-value products this package evaluates;
// the 64-bit-avoidance requirement in §4.2 is specific to calculateRatio,
// not to this general-purpose multiply (§3: "at least 32-bit integers
// with the property that a×b/2^16 does not overflow").
func mulShift16(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> fixedShift)
}

// fixedFloor returns the integer part of a 16.16 fixed-point value.
func fixedFloor(x uint32) int { return int(x >> fixedShift) }

// fixedCeil returns the ceiling of a 16.16 fixed-point value, as an
// integer.
func fixedCeil(x uint32) int {
	return int((x + fixedOne - 1) >> fixedShift)
}

// toFixed converts an integer to a 16.16 fixed-point value.
func toFixed(x int) uint32 { return uint32(x) << fixedShift }
