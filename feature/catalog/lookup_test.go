package catalog

import (
	"testing"

	"bolt-manager/feature/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthForGrip(t *testing.T) {
	b6, err := geometry.BoltFor(6)
	require.NoError(t, err)

	// M6: K=4, U=1.6, so at LG=0 lmin = 2*4 + 2*1.6 = 11.2 and the
	// smallest customary length above it is 12.
	l, ok := LengthForGrip(b6, 0)
	require.True(t, ok)
	assert.Equal(t, 12.0, l)

	// Selection is strict: a length equal to lmin is not enough.
	// LG = 0.8 gives lmin = 12 exactly, so 16 is selected.
	l, ok = LengthForGrip(b6, 0.8)
	require.True(t, ok)
	assert.Equal(t, 16.0, l)

	// A grip longer than any customary length yields no row.
	_, ok = LengthForGrip(b6, 1000)
	assert.False(t, ok)
}

func TestGripStep(t *testing.T) {
	tests := []struct {
		lg   int
		want int
	}{
		{0, 2},
		{22, 2},
		{23, 5},
		{99, 5},
		{100, 10},
		{600, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gripStep(tt.lg), "lg=%d", tt.lg)
	}
}

func TestNearestNominal(t *testing.T) {
	bolts := geometry.Bolts()

	tests := []struct {
		d    int
		want int
	}{
		{3, 3},
		// 7 is equidistant from 6 and 8; the tie resolves to the lower
		// neighbor under the strict less-than comparison.
		{7, 6},
		{9, 8},   // dist 1 vs 1 to 10: lower wins
		{11, 10}, // dist 1 vs 1 to 12: lower wins
		{25, 24},
		{26, 27}, // strictly closer to 27
		{60, 56}, // 60 is equidistant from 56 and 64
		{63, 64},
		{64, 64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NearestNominal(bolts, tt.d), "d=%d", tt.d)
	}
}
