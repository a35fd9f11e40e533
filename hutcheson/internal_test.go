package hutcheson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSampleMoments_SingleClassVariance verifies the clamp on the variance
// moment: for a single-class sample the two sums cancel analytically, and
// the floating-point residue must come out as exactly zero, never negative.
func TestSampleMoments_SingleClassVariance(t *testing.T) {
	for _, counts := range [][]float64{
		{5, 0},
		{3, 0},
		{0, 0, 42},
		{7, 0, 0, 0},
	} {
		_, _, v, err := sampleMoments(counts)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v, "single-class sample %v must have zero variance", counts)
	}
}

// TestSampleMoments_KnownSample pins the moment formulas on a small sample.
func TestSampleMoments_KnownSample(t *testing.T) {
	n, h, v, err := sampleMoments([]float64{4, 4})
	require.NoError(t, err)

	assert.Equal(t, 8.0, n)
	assert.InDelta(t, math.Ln2, h, 1e-12, "two even classes carry ln 2 nats")
	// Σx·lnx = 8·ln4, Σx·ln²x = 8·ln²4; var = (8·ln²4 − 64·ln²4/8)/64 = 0.
	assert.Equal(t, 0.0, v)
}
