package shannon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ecodiv/shannon"
)

const epsilon = 1e-12

// TestIndex_EmptyInput verifies that an empty counts slice errors.
func TestIndex_EmptyInput(t *testing.T) {
	_, err := shannon.Index(nil, math.E)
	assert.ErrorIs(t, err, shannon.ErrEmptyInput, "nil counts must error")

	_, err = shannon.Index([]float64{}, math.E)
	assert.ErrorIs(t, err, shannon.ErrEmptyInput, "empty counts must error")
}

// TestIndex_BadValues verifies the counts contract: finite and non-negative.
func TestIndex_BadValues(t *testing.T) {
	_, err := shannon.Index([]float64{3, -1, 2}, math.E)
	assert.ErrorIs(t, err, shannon.ErrNegativeCount, "negative count must error")

	_, err = shannon.Index([]float64{3, math.NaN()}, math.E)
	assert.ErrorIs(t, err, shannon.ErrBadCount, "NaN count must error")

	_, err = shannon.Index([]float64{3, math.Inf(1)}, math.E)
	assert.ErrorIs(t, err, shannon.ErrBadCount, "infinite count must error")

	_, err = shannon.Index([]float64{0, 0, 0}, math.E)
	assert.ErrorIs(t, err, shannon.ErrNoObservations, "all-zero counts must error")
}

// TestIndex_BadBase verifies that base ≤ 1 is rejected.
func TestIndex_BadBase(t *testing.T) {
	_, err := shannon.Index([]float64{1, 2}, 1)
	assert.ErrorIs(t, err, shannon.ErrBadBase, "base 1 must error")

	_, err = shannon.Index([]float64{1, 2}, 0.5)
	assert.ErrorIs(t, err, shannon.ErrBadBase, "base < 1 must error")
}

// TestIndex_Uniform verifies that a perfectly even community reaches the
// entropy ceiling log_b(S).
func TestIndex_Uniform(t *testing.T) {
	h, err := shannon.Index([]float64{25, 25, 25, 25}, math.E)
	assert.NoError(t, err)
	assert.InDelta(t, math.Log(4), h, epsilon, "uniform community must hit ln(S)")

	h2, err := shannon.Index([]float64{1, 1}, 2)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, h2, epsilon, "two even classes carry exactly one bit")
}

// TestIndex_SingleClass verifies that a degenerate community has zero index.
func TestIndex_SingleClass(t *testing.T) {
	h, err := shannon.Index([]float64{42}, math.E)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, h, "single class carries no diversity")
}

// TestIndex_ZeroCountsIgnored verifies that absent classes contribute nothing.
func TestIndex_ZeroCountsIgnored(t *testing.T) {
	h1, err := shannon.Index([]float64{10, 20, 30}, math.E)
	assert.NoError(t, err)
	h2, err := shannon.Index([]float64{10, 0, 20, 0, 30}, math.E)
	assert.NoError(t, err)
	assert.InDelta(t, h1, h2, epsilon, "zero counts must not change the index")
}

// TestIndex_BaseRescaling verifies H_b = H_e / ln(b).
func TestIndex_BaseRescaling(t *testing.T) {
	counts := []float64{5, 9, 14, 2}

	hNat, err := shannon.Index(counts, math.E)
	assert.NoError(t, err)
	hTen, err := shannon.Index(counts, 10)
	assert.NoError(t, err)
	assert.InDelta(t, hNat/math.Log(10), hTen, epsilon, "base change is a pure rescale")
}

// TestMaxIndex verifies the ceiling and its argument contract.
func TestMaxIndex(t *testing.T) {
	hmax, err := shannon.MaxIndex(20, math.E)
	assert.NoError(t, err)
	assert.InDelta(t, math.Log(20), hmax, epsilon)

	_, err = shannon.MaxIndex(0, math.E)
	assert.ErrorIs(t, err, shannon.ErrEmptyInput, "zero classes must error")

	_, err = shannon.MaxIndex(3, 1)
	assert.ErrorIs(t, err, shannon.ErrBadBase, "base 1 must error")
}

// TestEvenness verifies Pielou's J′ bounds and the degenerate case.
func TestEvenness(t *testing.T) {
	j, err := shannon.Evenness([]float64{10, 10, 10}, math.E)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, j, epsilon, "even community must have J′ = 1")

	j, err = shannon.Evenness([]float64{97, 2, 1}, math.E)
	assert.NoError(t, err)
	assert.Greater(t, j, 0.0)
	assert.Less(t, j, 0.5, "highly skewed community must have low evenness")

	_, err = shannon.Evenness([]float64{42, 0, 0}, math.E)
	assert.ErrorIs(t, err, shannon.ErrDegenerate, "single present class has no evenness")
}

// TestEvenness_RichnessFromPresentClasses verifies that absent classes do not
// inflate the denominator.
func TestEvenness_RichnessFromPresentClasses(t *testing.T) {
	j1, err := shannon.Evenness([]float64{10, 20}, math.E)
	assert.NoError(t, err)
	j2, err := shannon.Evenness([]float64{10, 20, 0, 0}, math.E)
	assert.NoError(t, err)
	assert.InDelta(t, j1, j2, epsilon, "padding with zeros must not change J′")
}
