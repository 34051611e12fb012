package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTable_CenterIsUnity(t *testing.T) {
	table := NewTable(KernelRadius, KernelResolution)
	center := table.Len() / 2
	assert.Equal(t, int32(fixedOne), table.at(center), "table[R*N] must equal 1.0 in 16.16")
}

func TestTable_Symmetric(t *testing.T) {
	table := NewTable(KernelRadius, KernelResolution)
	n := table.Len()
	// Entry i sits at x = (2i/n - 1)*R, so its mirror -x is entry n-i.
	// Entry 0 (x = -R) has no mirror: x = +R is not stored.
	for i := 1; i < n; i++ {
		got := table.at(i)
		want := table.at(n - i)
		assert.InDeltaf(t, float64(want), float64(got), 1, "table[%d]=%d should mirror table[%d]=%d", i, got, n-i, want)
	}
}

func TestTable_Bounded(t *testing.T) {
	// The Lanczos kernel is bounded; the main lobe peak is 1.0 and side
	// lobes decay. Guard against a mis-scaled table producing wild
	// fixed-point values.
	table := NewTable(KernelRadius, KernelResolution)
	for i, v := range table.values {
		require.LessOrEqualf(t, v, int32(fixedOne)+1, "table[%d]=%d exceeds unity", i, v)
		require.GreaterOrEqualf(t, v, -int32(fixedOne)/2, "table[%d]=%d implausibly negative", i, v)
	}
}

func TestTable_PropertySymmetryAcrossRadiiAndResolutions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		radius := rapid.IntRange(1, 6).Draw(t, "radius")
		resolution := rapid.IntRange(8, 256).Draw(t, "resolution")
		table := NewTable(radius, resolution)
		n := table.Len()
		require.Equal(t, 2*radius*resolution, n)
		center := n / 2
		assert.Equal(t, int32(fixedOne), table.at(center))
		// Spot-check symmetry at a handful of indices rather than all n,
		// to keep the property check fast across many draws.
		for _, i := range []int{1, n/4 + 1, n - 1} {
			assert.InDeltaf(t, float64(table.at(n-i)), float64(table.at(i)), 1, "asymmetry at i=%d", i)
		}
	})
}
