//go:build !resample_debug

package resample

// assertIndexInBounds is a no-op in the default build; see
// debug_assert.go for the resample_debug build-tagged version.
func assertIndexInBounds(tableLen, k, inputLen, s int) {}
