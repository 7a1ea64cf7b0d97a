package geometry

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

// TestDerivedDimensions verifies the derivation formulas for every
// registered diameter.
func TestDerivedDimensions(t *testing.T) {
	bolts := Bolts()
	require.Len(t, bolts, 24)

	for _, b := range bolts {
		d := float64(b.D)

		assert.InDelta(t, d-(3.0*math.Sqrt(3.0)/8.0)*b.P, b.D2, tolerance, "M%d pitch diameter", b.D)
		assert.InDelta(t, (math.Sqrt(3.0)/2.0)*b.P, b.H, tolerance, "M%d thread height", b.D)
		assert.InDelta(t, math.Pi*d, b.C, tolerance, "M%d circumference", b.D)
		assert.InDelta(t, math.Atan2(b.P, b.C)*180.0/math.Pi, b.Beta, tolerance, "M%d helix angle", b.D)
		assert.InDelta(t, 2*d+6, b.B2, tolerance, "M%d b2", b.D)
		assert.InDelta(t, 2*d+12, b.B3, tolerance, "M%d b3", b.D)
		assert.InDelta(t, 2*d+25, b.B4, tolerance, "M%d b4", b.D)

		// Helix angle of a real thread is a small positive angle.
		assert.Greater(t, b.Beta, 0.0, "M%d", b.D)
		assert.Less(t, b.Beta, 90.0, "M%d", b.D)
	}
}

// TestRegistryInvariants covers uniqueness, ordering and length set shape.
func TestRegistryInvariants(t *testing.T) {
	bolts := Bolts()

	seen := make(map[int]bool)
	for _, b := range bolts {
		assert.False(t, seen[b.D], "duplicate diameter M%d", b.D)
		seen[b.D] = true

		require.NotEmpty(t, b.Lengths, "M%d has no customary lengths", b.D)
		assert.True(t, sort.Float64sAreSorted(b.Lengths), "M%d lengths not ascending", b.D)
	}

	// Full ISO coarse series, in insertion order.
	want := []int{3, 4, 5, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 27, 30, 33, 36, 39, 42, 45, 48, 52, 56, 64}
	got := make([]int, 0, len(bolts))
	for _, b := range bolts {
		got = append(got, b.D)
	}
	assert.Equal(t, want, got)
}

// TestAccessorIdempotence checks that repeated accessor calls return
// logically identical entries.
func TestAccessorIdempotence(t *testing.T) {
	first := Bolts()
	second := Bolts()
	assert.Equal(t, first, second)

	ft := Threads()
	st := Threads()
	assert.Equal(t, ft, st)
}

func TestBoltFor(t *testing.T) {
	b, err := BoltFor(12)
	require.NoError(t, err)
	assert.Equal(t, 12, b.D)
	assert.Equal(t, 1.75, b.P)
	assert.Equal(t, 100.0, b.DGL)
	assert.Equal(t, "M12", b.Name())

	_, err = BoltFor(13)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDiameter)
}

func TestThreadView(t *testing.T) {
	b, err := BoltFor(6)
	require.NoError(t, err)

	th := b.Thread()
	assert.Equal(t, b.D, th.D)
	assert.Equal(t, b.P, th.P)
	assert.InDelta(t, b.C, th.U, tolerance)
	assert.InDelta(t, b.Beta, th.Beta, tolerance)

	tf, err := ThreadFor(6)
	require.NoError(t, err)
	assert.Equal(t, th, tf)
}

// Spot-check curated base values the rest of the system depends on.
func TestCuratedValues(t *testing.T) {
	b6, err := BoltFor(6)
	require.NoError(t, err)
	assert.Equal(t, 4.0, b6.K)
	assert.Equal(t, 1.6, b6.U)

	b12, err := BoltFor(12)
	require.NoError(t, err)
	assert.Equal(t, 100.0, b12.DGL)
	assert.Equal(t, 10.0, b12.Lengths[0])
	assert.Equal(t, 300.0, b12.Lengths[len(b12.Lengths)-1])
}
