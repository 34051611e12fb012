// errors.go defines public error types for the resample package.

package resample

import "errors"

// Configuration violations, surfaced synchronously from Init/Adjust calls.
// End-of-input and end-of-output are not errors; they are the two
// termination reasons reported by Resample's boolean return.
var (
	// ErrChannelsInvalid indicates channels is outside [1, MaxChannels].
	ErrChannelsInvalid = errors.New("resample: channels must be between 1 and MaxChannels")

	// ErrRateInvalid indicates an input, output, or low-pass rate of zero.
	// calculateRatio silently returns 0 for a zero operand (see §9 of the
	// originating spec), which would freeze the resampler's forward
	// progress; Init and Adjust reject this explicitly instead.
	ErrRateInvalid = errors.New("resample: sample rates and low-pass rate must be nonzero")

	// ErrRadiusExceedsMaximum indicates an Adjust call would require a
	// larger stretched kernel radius than the Resampler was initialized
	// to accommodate.
	ErrRadiusExceedsMaximum = errors.New("resample: adjusted kernel radius exceeds the radius reserved at init")

	// ErrBufferTooSmall indicates the high-level input buffer capacity
	// cannot hold two radii of padding plus at least one usable frame.
	ErrBufferTooSmall = errors.New("resample: input buffer capacity too small for kernel radius")
)
