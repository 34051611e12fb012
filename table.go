package resample

import "math"

// Table is the precomputed, read-only Lanczos-windowed sinc kernel sampled
// at fixed sub-sample resolution and stored in 16.16 fixed point (§3, §4.1).
// A Table is a pure function of its radius and resolution: it is safe to
// build once and share across any number of LowLevel or Resampler
// instances, on any goroutines, without synchronization.
type Table struct {
	radius     int
	resolution int
	values     []int32 // 16.16 fixed point, length 2*radius*resolution
}

// NewTable builds a kernel table for the given radius (lobe count) and
// resolution (samples per lobe). Entry i corresponds to
// x = (i/(2*radius*resolution)*2 - 1) * radius, i.e. the kernel sampled
// uniformly across x in [-radius, +radius].
func NewTable(radius, resolution int) *Table {
	n := 2 * radius * resolution
	values := make([]int32, n)
	for i := range values {
		x := (float64(i)/float64(n)*2 - 1) * float64(radius)
		values[i] = int32(float64(fixedOne) * lanczosKernel(x, radius))
	}
	return &Table{radius: radius, resolution: resolution, values: values}
}

// DefaultTable builds a Table using the package's compile-time KernelRadius
// and KernelResolution.
func DefaultTable() *Table {
	return NewTable(KernelRadius, KernelResolution)
}

// Radius returns the lobe count the table was built with.
func (t *Table) Radius() int { return t.radius }

// Resolution returns the samples-per-lobe the table was built with.
func (t *Table) Resolution() int { return t.resolution }

// Len returns the number of entries in the table (2*Radius()*Resolution()).
func (t *Table) Len() int { return len(t.values) }

// at returns table entry i without bounds checking beyond what a plain
// slice index already provides; callers (the low-level engine) are
// responsible for the index-safety invariant in §4.3/P7.
func (t *Table) at(i int) int32 { return t.values[i] }

// lanczosKernel evaluates the Lanczos kernel at x, a pure double-precision
// step executed once per table entry during NewTable, never on the
// per-sample hot path. |x| must be <= radius.
func lanczosKernel(x float64, radius int) float64 {
	if x == 0 {
		return 1
	}
	r := float64(radius)
	piX := math.Pi * x
	piXOverR := piX / r
	return (math.Sin(piX) * math.Sin(piXOverR)) / (piX * piXOverR)
}
