// Package resample implements a Lanczos-windowed sinc audio resampler.
//
// It converts a stream of interleaved, multi-channel signed 16-bit PCM
// frames from one sample rate to another, low-pass filtering as it goes to
// suppress aliasing during downsampling. The conversion is driven by a
// precomputed fixed-point kernel table (Table) and performed by a stateful
// positional convolver (LowLevel). Resampler wraps LowLevel with an owned
// input buffer so that callers can feed it arbitrarily-sized chunks of a
// conceptually infinite stream without reading across chunk boundaries.
//
// # Low-level vs high-level
//
// LowLevel operates on a single padded input region supplied by the
// caller and is appropriate when the whole signal (or a pre-padded chunk
// of it) is already in memory. Resampler is the streaming adapter: it
// pulls frames from an InputFunc on demand and pushes resampled frames to
// an OutputFunc, taking care of the padding bookkeeping itself.
//
// # Fixed point
//
// All internal arithmetic is integer fixed point (16.16 for positions and
// ratios, 17.15 for the output-normalization multiplier) so that output is
// bit-reproducible across platforms for identical input. There is no
// floating-point output path; kernel precomputation is the only place
// float64 is used, and it runs once per Table, not on the per-frame path.
//
// # Callback contracts
//
// OutputFunc receives one frame of unclamped accumulated samples per call;
// values outside the int16 range are possible by design (see §4.3 of the
// originating specification) and clamping is the caller's responsibility.
// InputFunc returning zero signals end of stream.
package resample
