//go:build resample_debug

package resample

// assertIndexInBounds panics if k or s would index outside table or
// input respectively — the invariant §4.3/P7 claims holds by
// construction. It is compiled in only under the resample_debug build
// tag, mirroring the teacher library's own "#ifndef NDEBUG" accumulator
// check: an always-on assertion would cost cycles on the steady-state
// hot path this package is specified to keep allocation- and
// overhead-free.
func assertIndexInBounds(tableLen, k, inputLen, s int) {
	if k < 0 || k >= tableLen {
		panic("resample: kernel table index out of bounds")
	}
	if s < 0 || s >= inputLen {
		panic("resample: input sample index out of bounds")
	}
}
