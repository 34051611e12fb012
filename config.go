package resample

// Compile-time parameters (§4.5, §9(c) of the originating specification).
// These are plain constants rather than runtime-configurable fields: a
// consumer that needs a different kernel radius, resolution, or channel
// ceiling forks the package and edits these three lines, the same
// compile-time-only contract the original C library exposes via
// preprocessor defines.
const (
	// KernelRadius is R, the number of lobes of the windowed sinc kept on
	// each side of the origin.
	KernelRadius = 3

	// KernelResolution is N, the number of table samples per lobe.
	KernelResolution = 1024

	// MaxChannels bounds the per-frame channel accumulator array.
	MaxChannels = 16

	// defaultBufferFrames is the high-level input buffer capacity used by
	// NewResampler when the caller does not request a specific capacity.
	// It comfortably fits two padding radii plus a multi-millisecond
	// window at the rates and radius this package defaults to.
	defaultBufferFrames = 4096
)

// Config collects the runtime parameters for a Resampler (LowLevel.Init
// takes the same values as separate arguments). Channels, InputRate and
// OutputRate are mandatory; LowPassRate
// defaults to min(InputRate, OutputRate) when zero, which is the
// conventional "just prevent aliasing, nothing more" cutoff.
type Config struct {
	// Channels is the number of interleaved channels per frame, in
	// [1, MaxChannels].
	Channels int

	// InputRate is the sample rate, in Hz, of the frames fed to the
	// resampler.
	InputRate uint32

	// OutputRate is the sample rate, in Hz, of the frames the resampler
	// produces.
	OutputRate uint32

	// LowPassRate is the requested anti-aliasing cutoff, in Hz. Zero
	// means "use min(InputRate, OutputRate)". The effective cutoff is
	// always clamped to min(InputRate, OutputRate, LowPassRate); the
	// kernel is only ever stretched to lower the cutoff, never
	// compressed to raise it above the Nyquist rate of either side.
	LowPassRate uint32

	// BufferFrames is the high-level input buffer capacity, in frames,
	// for Resampler. Zero means defaultBufferFrames. Ignored by LowLevel,
	// which has no buffer of its own.
	BufferFrames int
}

func (c Config) effectiveLowPassRate() uint32 {
	cutoff := c.InputRate
	if c.OutputRate < cutoff {
		cutoff = c.OutputRate
	}
	if c.LowPassRate != 0 && c.LowPassRate < cutoff {
		cutoff = c.LowPassRate
	}
	return cutoff
}
