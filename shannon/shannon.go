// Package shannon - index primitives shared by the synth and hutcheson packages.
//
// Design principles:
//   - Deterministic, side-effect free functions over plain []float64 counts.
//   - No logging, no panics on user input - only sentinel errors below.
//   - Single pass over the data; no hidden allocations.
package shannon

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors returned by the shannon package.
var (
	// ErrEmptyInput indicates that an empty counts slice was provided.
	ErrEmptyInput = errors.New("shannon: counts must not be empty")

	// ErrNegativeCount indicates that a negative abundance was encountered.
	ErrNegativeCount = errors.New("shannon: counts must be non-negative")

	// ErrBadCount indicates a NaN or infinite abundance value.
	ErrBadCount = errors.New("shannon: counts must be finite numbers")

	// ErrNoObservations indicates that every count is zero, leaving no
	// distribution to measure.
	ErrNoObservations = errors.New("shannon: at least one count must be positive")

	// ErrBadBase indicates a logarithm base ≤ 1, for which log_b is not a
	// valid entropy scale.
	ErrBadBase = errors.New("shannon: logarithm base must exceed 1")

	// ErrDegenerate indicates a single-class community, for which evenness
	// is undefined (H′max = 0).
	ErrDegenerate = errors.New("shannon: evenness undefined for a single-class community")
)

// Index returns the Shannon diversity index H′ = −Σ pᵢ·log_b(pᵢ) of counts,
// where pᵢ = countsᵢ / Σcounts and zero counts contribute zero (0·log 0 ≡ 0).
//
// Contracts:
//   - counts must be non-empty, finite, non-negative, with a positive total.
//   - base must be > 1; use math.E for the index in nats.
//
// Note: gonum's stat.Entropy expects a pre-normalized distribution and fixes
// the natural base, so the termwise sum is computed here over raw counts and
// rescaled by 1/ln(base) at the end.
//
// Complexity: O(n) time, O(1) space.
func Index(counts []float64, base float64) (float64, error) {
	if err := validateCounts(counts); err != nil {
		return 0, err
	}
	if base <= 1 {
		return 0, ErrBadBase
	}

	var (
		total = floats.Sum(counts)
		h     float64 // accumulated −Σ p·ln(p), in nats
		p     float64 // relative abundance of the current class
		i     int
	)
	for i = 0; i < len(counts); i++ {
		if counts[i] == 0 {
			continue // absent class: 0·log 0 ≡ 0
		}
		p = counts[i] / total
		h -= p * math.Log(p)
	}

	return h / lnOf(base), nil
}

// lnOf returns ln(base), pinning base == math.E to exactly 1 so that
// natural-base results round-trip with math.Log outputs.
func lnOf(base float64) float64 {
	if base == math.E {
		return 1
	}

	return math.Log(base)
}

// MaxIndex returns the entropy ceiling log_b(classes) - the Shannon index of
// a perfectly even community with the given richness.
//
// Complexity: O(1).
func MaxIndex(classes int, base float64) (float64, error) {
	if classes < 1 {
		return 0, ErrEmptyInput
	}
	if base <= 1 {
		return 0, ErrBadBase
	}

	return math.Log(float64(classes)) / lnOf(base), nil
}

// Evenness returns Pielou's evenness J′ = H′ / log_b(S), where S is the
// number of classes with a positive count. J′ ranges over (0, 1], with 1 for
// a perfectly even community.
//
// Errors: those of Index, plus ErrDegenerate when S == 1.
//
// Complexity: O(n) time, O(1) space.
func Evenness(counts []float64, base float64) (float64, error) {
	h, err := Index(counts, base)
	if err != nil {
		return 0, err
	}

	// Richness = classes actually present; absent classes carry no evenness.
	var richness int
	for _, c := range counts {
		if c > 0 {
			richness++
		}
	}
	if richness < 2 {
		return 0, ErrDegenerate
	}

	hmax, err := MaxIndex(richness, base)
	if err != nil {
		return 0, err
	}

	return h / hmax, nil
}

// validateCounts enforces the shared counts contract: non-empty, finite,
// non-negative, at least one positive entry.
//
// Complexity: O(n).
func validateCounts(counts []float64) error {
	if len(counts) == 0 {
		return ErrEmptyInput
	}

	var seenPositive bool
	for _, c := range counts {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrBadCount
		}
		if c < 0 {
			return ErrNegativeCount
		}
		if c > 0 {
			seenPositive = true
		}
	}
	if !seenPositive {
		return ErrNoObservations
	}

	return nil
}
